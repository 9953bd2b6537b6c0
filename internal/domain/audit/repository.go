package audit

import "context"

type AuditRepository interface {
	ListAuditLogs(ctx context.Context, f Filter) ([]Log, error)
	CountAuditLogs(ctx context.Context) (int64, error)
}
