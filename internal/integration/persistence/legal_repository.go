package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/fittrack/backend/internal/application/usecase/legal"
	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
	"github.com/fittrack/backend/internal/integration/persistence/model"
)

// legalRepository implements the legal.LegalRepository interface.
type legalRepository struct {
	db *gorm.DB
}

// NewLegalRepository creates a new legal repository instance.
func NewLegalRepository(db *gorm.DB) legal.LegalRepository {
	return &legalRepository{
		db: db,
	}
}

// LatestPublished returns the newest published document of the given type.
func (r *legalRepository) LatestPublished(
	ctx context.Context,
	documentType string,
) (*entity.LegalDocument, error) {
	var documentModel model.LegalDocumentModel
	result := r.db.WithContext(ctx).
		Where("document_type = ?", documentType).
		Order("published_at DESC").
		First(&documentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDocumentNotFound
		}
		return nil, result.Error
	}
	return documentModel.ToEntity(), nil
}
