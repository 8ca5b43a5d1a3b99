package repository

import (
	ingestionRepo "go-storefront/internal/repository/ingestion"
	database "go-storefront/internal/pkg/db"
)

// IRepository is a container for all repository interfaces
type IRepository struct {
	Ingestion ingestionRepo.IRepository
}

// New wires every repository against db. A nil db yields an empty container.
func New(db *database.Database) *IRepository {
	if db == nil {
		return &IRepository{}
	}
	return &IRepository{
		Ingestion: ingestionRepo.NewRepo(db),
	}
}
