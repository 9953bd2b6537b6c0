package audit

import (
	"net/url"
	"strconv"
	"strings"
)

// Filter narrows the audit log. Empty fields are ignored.
type Filter struct {
	Role         string
	Action       string
	ResourceType string
	UserID       *int64
}

func FilterFromQuery(q url.Values) (Filter, error) {
	f := Filter{
		Role:         strings.TrimSpace(q.Get("role")),
		Action:       strings.TrimSpace(q.Get("action")),
		ResourceType: strings.TrimSpace(q.Get("resourceType")),
	}
	if raw := strings.TrimSpace(q.Get("userId")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return Filter{}, ErrInvalidUserID
		}
		f.UserID = &id
	}
	return f, nil
}

func (f Filter) IsEmpty() bool {
	return f.Role == "" && f.Action == "" && f.ResourceType == "" && f.UserID == nil
}

// Query encodes the filter for the backend.
func (f Filter) Query() url.Values {
	q := url.Values{}
	if f.Role != "" {
		q.Set("role", f.Role)
	}
	if f.Action != "" {
		q.Set("action", f.Action)
	}
	if f.ResourceType != "" {
		q.Set("resourceType", f.ResourceType)
	}
	if f.UserID != nil {
		q.Set("userId", strconv.FormatInt(*f.UserID, 10))
	}
	return q
}

type ListResponse struct {
	Logs  []Log `json:"logs"`
	Count int64 `json:"count"`
}
