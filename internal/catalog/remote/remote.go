// Package remote fetches the property catalog from a listings backend. In
// the demo configuration no backend exists and the static seed source is
// used instead.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/decentraestate/marketd/internal/models"
	"github.com/decentraestate/marketd/internal/utils/request"
)

type Source struct {
	url        string
	httpClient *resty.Client
}

func NewSource(url string) *Source {
	return &Source{
		url:        url,
		httpClient: request.Request,
	}
}

func (s *Source) Name() string {
	return "remote"
}

// Fetch retrieves the full property list as JSON.
func (s *Source) Fetch(ctx context.Context) ([]models.Property, error) {
	resp, err := s.httpClient.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	var properties []models.Property
	if err := json.Unmarshal(resp.Body(), &properties); err != nil {
		return nil, fmt.Errorf("failed to parse listings response: %w", err)
	}

	return properties, nil
}
