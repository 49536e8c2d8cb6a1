package model

import (
	"time"

	"github.com/fittrack/backend/internal/domain/entity"
)

// LegalDocumentModel represents the legal_documents table in the database.
// Documents are versioned; the newest published row per type is served.
type LegalDocumentModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	DocumentType string    `gorm:"type:varchar(30);not null;index"`
	Content      string    `gorm:"type:text;not null"`
	PublishedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the LegalDocumentModel.
func (LegalDocumentModel) TableName() string {
	return "legal_documents"
}

// ToEntity converts a LegalDocumentModel to a domain LegalDocument entity.
func (m *LegalDocumentModel) ToEntity() *entity.LegalDocument {
	return &entity.LegalDocument{
		ID:           m.ID,
		DocumentType: m.DocumentType,
		Content:      m.Content,
		PublishedAt:  m.PublishedAt,
	}
}
