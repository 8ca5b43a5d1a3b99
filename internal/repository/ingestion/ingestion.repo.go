package ingestion

import (
	"context"
	"go-storefront/internal/common/models"
	database "go-storefront/internal/pkg/db"
)

type IRepository interface {
	Create(ctx context.Context, record *models.AssetIngestion) error
	FindByID(ctx context.Context, id string) (*models.AssetIngestion, error)
}

type Repository struct {
	db *database.Database
}

func NewRepo(db *database.Database) IRepository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, record *models.AssetIngestion) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *Repository) FindByID(ctx context.Context, id string) (*models.AssetIngestion, error) {
	var record models.AssetIngestion
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}
