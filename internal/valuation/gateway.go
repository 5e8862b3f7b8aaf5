package valuation

import (
	"context"
	"errors"
	"strings"
)

// Input precondition errors. These are the only errors the gateway surfaces;
// provider failures are absorbed by the fallback policy.
var (
	ErrEmptyAddress  = errors.New("valuation: address must not be empty")
	ErrEmptyDocument = errors.New("valuation: document payload must not be empty")
	ErrMissingMime   = errors.New("valuation: document mime type must not be empty")
)

// Gateway fronts a Provider with the availability-over-accuracy policy: a
// provider failure never reaches the caller, it is replaced by the fixed
// fallback payload marked with SourceFallback.
type Gateway struct {
	provider Provider
	logger   Logger
}

func NewGateway(provider Provider, logger Logger) *Gateway {
	return &Gateway{provider: provider, logger: logger}
}

// Valuate estimates the market value of the described property.
func (g *Gateway) Valuate(ctx context.Context, details string) (*Evaluation, error) {
	if strings.TrimSpace(details) == "" {
		return nil, ErrEmptyAddress
	}

	result, err := g.provider.Valuate(ctx, details)
	if err != nil {
		g.logger.Error("valuation failed, serving fallback", "error", err)
		fallback := FallbackEvaluation()
		fallback.Source = SourceFallback
		return fallback, nil
	}
	return result, nil
}

// VerifyDocument inspects an uploaded deed. The payload is validated before
// any external call is attempted.
func (g *Gateway) VerifyDocument(ctx context.Context, documentBase64, mimeType string) (*DocumentVerification, error) {
	if strings.TrimSpace(documentBase64) == "" {
		return nil, ErrEmptyDocument
	}
	if strings.TrimSpace(mimeType) == "" {
		return nil, ErrMissingMime
	}

	result, err := g.provider.VerifyDocument(ctx, documentBase64, mimeType)
	if err != nil {
		g.logger.Error("document verification failed, serving fallback", "error", err)
		fallback := FallbackVerification()
		fallback.Source = SourceFallback
		return fallback, nil
	}
	return result, nil
}
