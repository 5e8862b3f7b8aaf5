package valuation

import (
	"context"
)

// Result provenance. Fallback means the live provider failed and the canned
// payload was substituted; callers can surface this to the user.
const (
	SourceLive     = "live"
	SourceMock     = "mock"
	SourceFallback = "fallback"
)

// Provider defines the AI-model round trips behind the gateway.
type Provider interface {
	// Valuate estimates the market value of a property from a free-text
	// description.
	Valuate(ctx context.Context, details string) (*Evaluation, error)

	// VerifyDocument inspects a base64-encoded deed document and extracts
	// ownership details.
	VerifyDocument(ctx context.Context, documentBase64, mimeType string) (*DocumentVerification, error)
}

// Evaluation is an AI market valuation.
type Evaluation struct {
	EstimatedValue float64      `json:"estimated_value"`
	Confidence     string       `json:"confidence"`
	Comparables    []Comparable `json:"comparables"`
	Source         string       `json:"source"`
}

// Comparable is one nearby sale used for the estimate.
type Comparable struct {
	Address   string  `json:"address"`
	SalePrice float64 `json:"sale_price"`
}

// DocumentVerification is the outcome of AI deed inspection.
type DocumentVerification struct {
	OwnerName        string   `json:"owner_name"`
	PropertyAddress  string   `json:"property_address"`
	RegistrationDate string   `json:"registration_date"`
	IsValid          bool     `json:"is_valid"`
	Issues           []string `json:"issues"`
	Source           string   `json:"source"`
}

// FallbackEvaluation returns the fixed payload served when no live result is
// available. Callers own the copy.
func FallbackEvaluation() *Evaluation {
	return &Evaluation{
		EstimatedValue: 1310000,
		Confidence:     "High",
		Comparables: []Comparable{
			{Address: "120 Ocean Drive, Miami, FL", SalePrice: 1280000},
			{Address: "135 Ocean Drive, Miami, FL", SalePrice: 1350000},
		},
	}
}

// FallbackVerification returns the fixed payload served when no live result
// is available.
func FallbackVerification() *DocumentVerification {
	return &DocumentVerification{
		OwnerName:        "John Doe",
		PropertyAddress:  "123 Ocean Drive, Miami, FL",
		RegistrationDate: "2022-08-15",
		IsValid:          true,
		Issues:           []string{},
	}
}

type Logger interface {
	Error(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
}
