package repository

import (
	"resume-relevance/internal/model"
	"resume-relevance/internal/storage"
)

type JobRepository struct {
	store *storage.Store
}

func NewJobRepository(store *storage.Store) *JobRepository {
	return &JobRepository{store}
}

func (r *JobRepository) Create(fields storage.Record) (*model.Job, error) {
	id, err := r.store.Add(fields)
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *JobRepository) FindByID(id string) (*model.Job, error) {
	rec, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	return decodeRecord[model.Job](rec)
}

func (r *JobRepository) GetAll() ([]model.Job, error) {
	recs, err := r.store.ReadAll()
	if err != nil {
		return nil, err
	}
	return decodeRecords[model.Job](recs)
}

func (r *JobRepository) Update(id string, fields storage.Record) (*model.Job, error) {
	if err := r.store.Update(id, fields); err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *JobRepository) Delete(id string) error {
	return r.store.Delete(id)
}
