package backend

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

const maxErrorBody = 64 << 10

// Error is a non-2xx reply from the payroll backend. The body is either a
// JSON object or plain text; the recognised JSON attributes are lifted into
// fields and the raw text is kept for the fallback message.
type Error struct {
	Status           int
	StatusText       string
	Message          string
	Detail           string
	Field            string
	Period           string
	ExistingStatus   string
	ValidationErrors map[string]string
	Body             string
}

func (e *Error) Error() string {
	msg := e.BestMessage()
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("backend: http %d: %s", e.Status, msg)
}

// BestMessage returns the first non-empty of message, nested error, plain
// text body. It is empty when the backend sent nothing usable.
func (e *Error) BestMessage() string {
	for _, s := range []string{e.Message, e.Detail, e.Body} {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}
	return ""
}

func (e *Error) HasValidationErrors() bool {
	return e.Field != "" || len(e.ValidationErrors) > 0
}

// TransportError wraps a failure to reach the backend at all.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

var ErrUnexpectedResponse = errors.New("backend: unexpected response body")

// IsStatus reports whether err is a backend reply with the given status.
func IsStatus(err error, status int) bool {
	var be *Error
	return errors.As(err, &be) && be.Status == status
}

func readError(resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return parseError(resp.StatusCode, statusText(resp), b)
}

func statusText(resp *http.Response) string {
	// resp.Status is "404 Not Found"
	if _, text, ok := strings.Cut(resp.Status, " "); ok && text != "" {
		return text
	}
	return http.StatusText(resp.StatusCode)
}

func parseError(status int, text string, body []byte) *Error {
	e := &Error{Status: status, StatusText: text}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return e
	}
	if body[0] != '{' {
		var s string
		if body[0] == '"' && json.Unmarshal(body, &s) == nil {
			e.Body = s
		} else {
			e.Body = string(body)
		}
		return e
	}

	var raw struct {
		Message          string          `json:"message"`
		Error            json.RawMessage `json:"error"`
		Field            string          `json:"field"`
		Period           string          `json:"period"`
		ExistingStatus   string          `json:"existingStatus"`
		ValidationErrors json.RawMessage `json:"validationErrors"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		e.Body = string(body)
		return e
	}
	e.Message = raw.Message
	e.Field = raw.Field
	e.Period = raw.Period
	e.ExistingStatus = raw.ExistingStatus
	e.ValidationErrors = parseValidationErrors(raw.ValidationErrors)
	mergeNested(e, raw.Error)
	return e
}

// mergeNested reads the "error" attribute, which Spring sends either as a
// plain reason string or as an object carrying its own details.
func mergeNested(e *Error, raw json.RawMessage) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		e.Detail = s
		return
	}
	var nested struct {
		Message        string `json:"message"`
		Error          string `json:"error"`
		Field          string `json:"field"`
		Period         string `json:"period"`
		ExistingStatus string `json:"existingStatus"`
	}
	if json.Unmarshal(raw, &nested) != nil {
		return
	}
	e.Detail = firstNonEmpty(nested.Message, nested.Error)
	if e.Field == "" {
		e.Field = nested.Field
	}
	if e.Period == "" {
		e.Period = nested.Period
	}
	if e.ExistingStatus == "" {
		e.ExistingStatus = nested.ExistingStatus
	}
}

// parseValidationErrors accepts {"field":"msg"} or [{"field":..,"message":..}].
func parseValidationErrors(raw json.RawMessage) map[string]string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var asMap map[string]string
	if json.Unmarshal(raw, &asMap) == nil {
		if len(asMap) == 0 {
			return nil
		}
		return asMap
	}
	var asList []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &asList) != nil || len(asList) == 0 {
		return nil
	}
	out := make(map[string]string, len(asList))
	for _, item := range asList {
		out[item.Field] = item.Message
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// NotFoundAs replaces a backend 404 with the caller's domain error.
func NotFoundAs(err, target error) error {
	if IsStatus(err, http.StatusNotFound) {
		return target
	}
	return err
}
