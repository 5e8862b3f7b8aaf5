package catalog

import (
	"context"

	"github.com/decentraestate/marketd/internal/models"
)

// StaticSource serves a fixed, in-process property list. It backs the
// default offline configuration with the seed dataset.
type StaticSource struct {
	properties []models.Property
}

func NewStaticSource(properties []models.Property) *StaticSource {
	return &StaticSource{properties: properties}
}

func (s *StaticSource) Name() string {
	return "static"
}

func (s *StaticSource) Fetch(ctx context.Context) ([]models.Property, error) {
	return s.properties, nil
}
