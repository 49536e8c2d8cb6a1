package legal

import (
	"context"

	"github.com/fittrack/backend/internal/domain/entity"
)

// LegalRepository abstracts the legal document storage.
type LegalRepository interface {
	// LatestPublished returns the newest published document of the given
	// type, or domain ErrDocumentNotFound when none exists.
	LatestPublished(ctx context.Context, documentType string) (*entity.LegalDocument, error)
}
