package repository

import (
	"resume-relevance/internal/storage"
)

// AuditLogRepository keeps the request audit trail. Entries are free-form
// records written by the audit middleware.
type AuditLogRepository struct {
	store *storage.Store
}

func NewAuditLogRepository(store *storage.Store) *AuditLogRepository {
	return &AuditLogRepository{store}
}

func (r *AuditLogRepository) Append(entry storage.Record) error {
	_, err := r.store.Add(entry)
	return err
}

func (r *AuditLogRepository) GetAll() ([]storage.Record, error) {
	return r.store.ReadAll()
}
