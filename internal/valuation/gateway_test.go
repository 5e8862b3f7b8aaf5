package valuation

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	valuateCalls int
	verifyCalls  int
	fail         bool
}

func (s *stubProvider) Valuate(ctx context.Context, details string) (*Evaluation, error) {
	s.valuateCalls++
	if s.fail {
		return nil, fmt.Errorf("model unavailable")
	}
	return &Evaluation{EstimatedValue: 900000, Confidence: "Medium", Source: SourceLive}, nil
}

func (s *stubProvider) VerifyDocument(ctx context.Context, documentBase64, mimeType string) (*DocumentVerification, error) {
	s.verifyCalls++
	if s.fail {
		return nil, fmt.Errorf("model unavailable")
	}
	return &DocumentVerification{OwnerName: "Jane Roe", PropertyAddress: "1 Elm St", RegistrationDate: "2021-01-01", IsValid: true, Issues: []string{}, Source: SourceLive}, nil
}

func TestGatewayValuate(t *testing.T) {
	provider := &stubProvider{}
	gateway := NewGateway(provider, slog.Default())

	result, err := gateway.Valuate(context.Background(), "123 Ocean Drive, Miami, FL")
	require.NoError(t, err)
	assert.Equal(t, SourceLive, result.Source)
	assert.Equal(t, 900000.0, result.EstimatedValue)
	assert.Equal(t, 1, provider.valuateCalls)
}

func TestGatewayValuateRejectsEmptyAddress(t *testing.T) {
	provider := &stubProvider{}
	gateway := NewGateway(provider, slog.Default())

	for _, address := range []string{"", "   "} {
		_, err := gateway.Valuate(context.Background(), address)
		assert.ErrorIs(t, err, ErrEmptyAddress)
	}
	assert.Zero(t, provider.valuateCalls, "precondition failures must not reach the provider")
}

func TestGatewayValuateFallsBackOnFailure(t *testing.T) {
	gateway := NewGateway(&stubProvider{fail: true}, slog.Default())

	result, err := gateway.Valuate(context.Background(), "123 Ocean Drive, Miami, FL")
	require.NoError(t, err, "provider failure must never surface")
	assert.Equal(t, SourceFallback, result.Source)
	assert.Equal(t, 1310000.0, result.EstimatedValue)
	assert.Equal(t, "High", result.Confidence)
	assert.Len(t, result.Comparables, 2)
}

func TestGatewayVerifyDocument(t *testing.T) {
	provider := &stubProvider{}
	gateway := NewGateway(provider, slog.Default())

	result, err := gateway.VerifyDocument(context.Background(), "aGVsbG8=", "image/png")
	require.NoError(t, err)
	assert.Equal(t, SourceLive, result.Source)
	assert.True(t, result.IsValid)
}

func TestGatewayVerifyDocumentPreconditions(t *testing.T) {
	provider := &stubProvider{}
	gateway := NewGateway(provider, slog.Default())

	_, err := gateway.VerifyDocument(context.Background(), "", "image/png")
	assert.ErrorIs(t, err, ErrEmptyDocument)

	_, err = gateway.VerifyDocument(context.Background(), "aGVsbG8=", "")
	assert.ErrorIs(t, err, ErrMissingMime)

	assert.Zero(t, provider.verifyCalls, "precondition failures must not reach the provider")
}

func TestGatewayVerifyDocumentFallsBackOnFailure(t *testing.T) {
	gateway := NewGateway(&stubProvider{fail: true}, slog.Default())

	result, err := gateway.VerifyDocument(context.Background(), "aGVsbG8=", "image/png")
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, result.Source)
	assert.Equal(t, "John Doe", result.OwnerName)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Issues)
}
