package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssetIngestion struct {
	ID            string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	RequestID     string    `json:"request_id" gorm:"type:varchar(64);index"`
	UploadedBy    string    `json:"uploaded_by" gorm:"type:varchar(64);index"`
	Status        string    `json:"status" gorm:"type:varchar(20);not null;index"`
	FileCount     int       `json:"file_count" gorm:"not null"`
	AcceptedCount int       `json:"accepted_count" gorm:"not null"`
	Results       JSONB     `json:"results"`
	Reports       JSONB     `json:"reports"`
	Error         string    `json:"error" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (AssetIngestion) TableName() string {
	return "asset_ingestions"
}

func (a *AssetIngestion) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
