package backend

import (
	"context"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/audit"
)

func (c *Client) ListAuditLogs(ctx context.Context, f audit.Filter) ([]audit.Log, error) {
	var out []audit.Log
	if f.IsEmpty() {
		err := c.get(ctx, "/audit-logs", nil, &out)
		return out, err
	}
	err := c.get(ctx, "/audit-logs/filter", f.Query(), &out)
	return out, err
}

func (c *Client) CountAuditLogs(ctx context.Context) (int64, error) {
	var out int64
	err := c.get(ctx, "/audit-logs/count", nil, &out)
	return out, err
}
