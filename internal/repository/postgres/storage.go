package postgres

import (
	"github.com/gan-2/real-estate-api/internal/repository"
)

type Storage struct {
	db DBTX
}

func NewStorage(db DBTX) *Storage {
	return &Storage{db: db}
}

func (s *Storage) User() repository.UserRepo {
	return &UserRepo{DB: s.db}
}

func (s *Storage) Property() repository.PropertyRepo {
	return &PropertyRepo{DB: s.db}
}
