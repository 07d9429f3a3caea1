package repository

import (
	"resume-relevance/internal/model"
	"resume-relevance/internal/storage"
)

type ResumeRepository struct {
	store *storage.Store
}

func NewResumeRepository(store *storage.Store) *ResumeRepository {
	return &ResumeRepository{store}
}

func (r *ResumeRepository) Create(fields storage.Record) (*model.Resume, error) {
	id, err := r.store.Add(fields)
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *ResumeRepository) FindByID(id string) (*model.Resume, error) {
	rec, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	return decodeRecord[model.Resume](rec)
}

func (r *ResumeRepository) GetAll() ([]model.Resume, error) {
	recs, err := r.store.ReadAll()
	if err != nil {
		return nil, err
	}
	return decodeRecords[model.Resume](recs)
}

func (r *ResumeRepository) Update(id string, fields storage.Record) (*model.Resume, error) {
	if err := r.store.Update(id, fields); err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *ResumeRepository) Delete(id string) error {
	return r.store.Delete(id)
}
