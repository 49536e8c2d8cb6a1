package legal

import (
	"context"
	"errors"

	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
)

// GetDocumentInput represents the input for fetching a legal document.
type GetDocumentInput struct {
	DocumentType string
}

// GetDocumentOutput represents the output of fetching a legal document.
type GetDocumentOutput struct {
	Content string
}

// GetDocumentUseCase serves the newest published legal text of a given type.
type GetDocumentUseCase struct {
	legalRepo LegalRepository
}

// NewGetDocumentUseCase creates a new GetDocumentUseCase instance.
func NewGetDocumentUseCase(legalRepo LegalRepository) *GetDocumentUseCase {
	return &GetDocumentUseCase{
		legalRepo: legalRepo,
	}
}

// Execute fetches the document content for the requested type.
func (uc *GetDocumentUseCase) Execute(
	ctx context.Context,
	input GetDocumentInput,
) (*GetDocumentOutput, error) {
	switch input.DocumentType {
	case entity.DocumentTypePrivacyPolicy, entity.DocumentTypeTermsOfService:
	default:
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeInvalidDocumentType,
			"document type must be: privacy_policy or terms_of_service",
			domainerror.ErrInvalidDocumentType,
		)
	}

	document, err := uc.legalRepo.LatestPublished(ctx, input.DocumentType)
	if err != nil {
		if errors.Is(err, domainerror.ErrDocumentNotFound) {
			return nil, domainerror.NewProfileError(
				domainerror.ErrCodeDocumentNotFound,
				"document not found",
				domainerror.ErrDocumentNotFound,
			)
		}
		return nil, domainerror.NewProfileError(
			domainerror.ErrCodeProfileInternalError,
			"failed to get document",
			err,
		)
	}

	return &GetDocumentOutput{Content: document.Content}, nil
}
