package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// maxFormMemory bounds the part of a multipart upload held in memory.
const maxFormMemory = 10 << 20

var errMissingPart = errors.New("missing form part")

func decodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// idParam parses a positive numeric path parameter.
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// decodePart decodes the JSON carried by a form part. Browsers send a Blob
// part as a file named "blob", so both shapes are accepted.
func decodePart(form *multipart.Form, name string, v interface{}) error {
	if values := form.Value[name]; len(values) > 0 {
		return json.Unmarshal([]byte(values[0]), v)
	}
	if files := form.File[name]; len(files) > 0 {
		data, err := readFile(files[0])
		if err != nil {
			return err
		}
		return json.Unmarshal(data, v)
	}
	return fmt.Errorf("%w: %s", errMissingPart, name)
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
