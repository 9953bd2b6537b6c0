package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/config"
	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/auth"
)

// Client talks to the payroll backend REST API. The bearer credential is
// taken from the session in the request context, so the backend authorizes
// every call as the signed-in user.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(cfg config.BackendConfig) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	u, err := url.Parse(baseURL)
	if err != nil || baseURL == "" {
		return nil, errors.New("backend: invalid base url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.New("backend: invalid base url scheme")
	}
	if u.Host == "" {
		return nil, errors.New("backend: invalid base url host")
	}
	return &Client{
		baseURL:    baseURL + "/api",
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// NewWithHTTPClient is used by tests to point at an httptest server.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/") + "/api", httpClient: hc}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, query url.Values, body, out any) error {
	return c.do(ctx, http.MethodPut, path, query, body, out)
}

func (c *Client) delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("backend: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(b)
		contentType = "application/json"
	}
	return c.send(ctx, method, path, query, reader, contentType, out)
}

// postParts sends a multipart form whose named part carries body as JSON,
// the shape the backend expects for records that may have a document
// attached.
func (c *Client) postParts(ctx context.Context, path, part string, body, out any) error {
	return c.postForm(ctx, path, nil, part, body, nil, out)
}

// filePart is one uploaded file of a multipart form.
type filePart struct {
	field       string
	name        string
	contentType string
	data        []byte
}

func (c *Client) postForm(ctx context.Context, path string, query url.Values, part string, body any, files []filePart, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("backend: encode %s: %w", path, err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q`, part))
	header.Set("Content-Type", "application/json")
	w, err := mw.CreatePart(header)
	if err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		return err
	}

	for _, f := range files {
		contentType := f.contentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		fh := textproto.MIMEHeader{}
		fh.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.name))
		fh.Set("Content-Type", contentType)
		fw, err := mw.CreatePart(fh)
		if err != nil {
			return err
		}
		if _, err := fw.Write(f.data); err != nil {
			return err
		}
	}

	if err := mw.Close(); err != nil {
		return err
	}
	return c.send(ctx, http.MethodPost, path, query, &buf, mw.FormDataContentType(), out)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json, text/plain")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if s, ok := auth.SessionFromContext(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+s.Credential)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return readError(resp)
	}
	return decode(resp, out)
}

// decode fills out from a 2xx reply. *string receives the raw text, which
// is how the backend answers its plain-text endpoints.
func decode(resp *http.Response, out any) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: resp.Request.Method, Path: resp.Request.URL.Path, Err: err}
	}
	if s, ok := out.(*string); ok {
		*s = strings.TrimSpace(string(b))
		return nil
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return nil
}

func pathf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
