package audit

import (
	"context"

	"github.com/tejas11054/Payment-and-Payroll-Management-System/internal/domain/audit"
)

type AuditServiceImpl struct {
	auditRepo audit.AuditRepository
}

func NewAuditService(auditRepo audit.AuditRepository) audit.AuditService {
	return &AuditServiceImpl{auditRepo: auditRepo}
}

// List returns the audit log, narrowed by f when any field is set.
func (s *AuditServiceImpl) List(ctx context.Context, f audit.Filter) (audit.ListResponse, error) {
	logs, err := s.auditRepo.ListAuditLogs(ctx, f)
	if err != nil {
		return audit.ListResponse{}, err
	}
	if logs == nil {
		logs = []audit.Log{}
	}
	return audit.ListResponse{Logs: logs, Count: int64(len(logs))}, nil
}

func (s *AuditServiceImpl) Count(ctx context.Context) (int64, error) {
	return s.auditRepo.CountAuditLogs(ctx)
}
