package entity

import "time"

// Legal document types served by the legal endpoints.
const (
	DocumentTypePrivacyPolicy  = "privacy_policy"
	DocumentTypeTermsOfService = "terms_of_service"
)

// LegalDocument is a versioned legal text; the newest published row per type
// is the one served.
type LegalDocument struct {
	ID           int64
	DocumentType string
	Content      string
	PublishedAt  time.Time
}
