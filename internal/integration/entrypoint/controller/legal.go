package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fittrack/backend/internal/application/usecase/legal"
	"github.com/fittrack/backend/internal/domain/entity"
	domainerror "github.com/fittrack/backend/internal/domain/error"
	"github.com/fittrack/backend/internal/integration/entrypoint/dto"
)

// LegalController handles the unauthenticated legal document endpoints.
type LegalController struct {
	getDocumentUseCase *legal.GetDocumentUseCase
}

// NewLegalController creates a new legal controller instance.
func NewLegalController(getDocumentUseCase *legal.GetDocumentUseCase) *LegalController {
	return &LegalController{
		getDocumentUseCase: getDocumentUseCase,
	}
}

// GetPrivacyPolicy handles GET /legal/privacy-policy requests.
func (c *LegalController) GetPrivacyPolicy(ctx *gin.Context) {
	c.serveDocument(ctx, entity.DocumentTypePrivacyPolicy)
}

// GetTermsOfService handles GET /legal/terms-of-service requests.
func (c *LegalController) GetTermsOfService(ctx *gin.Context) {
	c.serveDocument(ctx, entity.DocumentTypeTermsOfService)
}

func (c *LegalController) serveDocument(ctx *gin.Context, documentType string) {
	output, err := c.getDocumentUseCase.Execute(ctx.Request.Context(), legal.GetDocumentInput{DocumentType: documentType})
	if err != nil {
		var profileErr *domainerror.ProfileError
		if errors.As(err, &profileErr) && profileErr.Code == domainerror.ErrCodeDocumentNotFound {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: profileErr.Message,
				Code:  string(profileErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.LegalDocumentResponse{Content: output.Content})
}
