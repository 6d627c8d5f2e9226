package repository

import (
	"github.com/sokonihq/sokoni/internal/adapter/storage"
)

// Repository is the Postgres implementation of port.Repository.
type Repository struct {
	db *storage.DB
}

func NewRepository(db *storage.DB) (*Repository, error) {
	return &Repository{db: db}, nil
}

// CatalogRepository implements the port.CatalogStore contract over the
// same database. The order core treats it as an external collaborator.
type CatalogRepository struct {
	db *storage.DB
}

func NewCatalogRepository(db *storage.DB) (*CatalogRepository, error) {
	return &CatalogRepository{db: db}, nil
}
