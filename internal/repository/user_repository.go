package repository

import (
	"resume-relevance/internal/model"
	"resume-relevance/internal/storage"
)

type UserRepository struct {
	store *storage.Store
}

func NewUserRepository(store *storage.Store) *UserRepository {
	return &UserRepository{store}
}

func (r *UserRepository) Create(user *model.User) (*model.User, error) {
	fields, err := structToRecord(user)
	if err != nil {
		return nil, err
	}
	id, err := r.store.Add(fields)
	if err != nil {
		return nil, err
	}
	rec, err := r.store.Get(id)
	if err != nil {
		return nil, err
	}
	return decodeRecord[model.User](rec)
}

// FindByUsername returns storage.ErrNotFound when no user matches.
func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	recs, err := r.store.Find(storage.Record{"username": username})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, storage.ErrNotFound
	}
	return decodeRecord[model.User](recs[0])
}

func (r *UserRepository) GetAll() ([]model.User, error) {
	recs, err := r.store.ReadAll()
	if err != nil {
		return nil, err
	}
	return decodeRecords[model.User](recs)
}
