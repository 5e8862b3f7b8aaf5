// Package mock is the provider used when no AI credentials are configured.
// It serves the documented canned payloads after an artificial settlement
// latency, so the caller sees the same shape and timing as the live path.
package mock

import (
	"context"
	"time"

	"github.com/decentraestate/marketd/internal/valuation"
)

type Provider struct {
	valuateLatency time.Duration
	verifyLatency  time.Duration
}

// NewProvider creates a mock provider. Latencies may be zero (tests).
func NewProvider(valuateLatency, verifyLatency time.Duration) *Provider {
	return &Provider{
		valuateLatency: valuateLatency,
		verifyLatency:  verifyLatency,
	}
}

// Valuate implements the valuation.Provider interface with a fixed estimate.
func (p *Provider) Valuate(ctx context.Context, details string) (*valuation.Evaluation, error) {
	if err := wait(ctx, p.valuateLatency); err != nil {
		return nil, err
	}

	result := valuation.FallbackEvaluation()
	result.Source = valuation.SourceMock
	return result, nil
}

// VerifyDocument implements the valuation.Provider interface with a fixed
// verdict.
func (p *Provider) VerifyDocument(ctx context.Context, documentBase64, mimeType string) (*valuation.DocumentVerification, error) {
	if err := wait(ctx, p.verifyLatency); err != nil {
		return nil, err
	}

	result := valuation.FallbackVerification()
	result.Source = valuation.SourceMock
	return result, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
