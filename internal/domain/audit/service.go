package audit

import "context"

type AuditService interface {
	List(ctx context.Context, f Filter) (ListResponse, error)
	Count(ctx context.Context) (int64, error)
}
