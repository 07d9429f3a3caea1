package repository

import (
	"resume-relevance/internal/model"
	"resume-relevance/internal/storage"
)

type AnalysisRepository struct {
	store *storage.Store
}

func NewAnalysisRepository(store *storage.Store) *AnalysisRepository {
	return &AnalysisRepository{store}
}

// Create persists an analysis outcome. The store assigns the id and
// creation timestamp; whatever the analyzer put there is discarded.
func (r *AnalysisRepository) Create(analysis *model.Analysis) (*model.Analysis, error) {
	fields, err := structToRecord(analysis)
	if err != nil {
		return nil, err
	}
	id, err := r.store.Add(fields)
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *AnalysisRepository) FindByID(id string) (*model.Analysis, error) {
	rec, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	return decodeRecord[model.Analysis](rec)
}

func (r *AnalysisRepository) GetAll() ([]model.Analysis, error) {
	recs, err := r.store.ReadAll()
	if err != nil {
		return nil, err
	}
	return decodeRecords[model.Analysis](recs)
}

func (r *AnalysisRepository) FindByResumeID(resumeID string) ([]model.Analysis, error) {
	recs, err := r.store.Find(storage.Record{"resume_id": resumeID})
	if err != nil {
		return nil, err
	}
	return decodeRecords[model.Analysis](recs)
}
