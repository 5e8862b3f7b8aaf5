package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/decentraestate/marketd/internal/models"
	"github.com/decentraestate/marketd/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSource struct{}

func (failingSource) Name() string { return "failing" }
func (failingSource) Fetch(ctx context.Context) ([]models.Property, error) {
	return nil, fmt.Errorf("listings endpoint unreachable")
}

func TestLoadFallsThroughToNextSource(t *testing.T) {
	ctx := context.Background()
	sources := []Source{
		failingSource{},
		NewStaticSource(seed.Properties()),
	}

	c, err := Load(ctx, sources, slog.Default())
	require.NoError(t, err)
	assert.Len(t, c.Properties(), 6)
}

func TestLoadFailsWhenAllSourcesFail(t *testing.T) {
	ctx := context.Background()

	_, err := Load(ctx, []Source{failingSource{}}, slog.Default())
	assert.Error(t, err)
}

func TestLoadRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name       string
		properties []models.Property
	}{
		{
			name: "tokens available above total",
			properties: []models.Property{
				{ID: 1, Price: 100000, TokensAvailable: 200, TotalTokens: 100},
			},
		},
		{
			name: "non-positive price",
			properties: []models.Property{
				{ID: 1, Price: 0, TokensAvailable: 50, TotalTokens: 100},
			},
		},
		{
			name: "duplicate ids",
			properties: []models.Property{
				{ID: 1, Price: 100000, TokensAvailable: 50, TotalTokens: 100},
				{ID: 1, Price: 200000, TokensAvailable: 10, TotalTokens: 100},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(context.Background(), []Source{NewStaticSource(tt.properties)}, slog.Default())
			assert.Error(t, err)
		})
	}
}

func TestCatalogByID(t *testing.T) {
	c := New(seed.Properties())

	p, ok := c.ByID(3)
	require.True(t, ok)
	assert.Equal(t, "Urban Loft", p.Name)

	_, ok = c.ByID(99)
	assert.False(t, ok)
}
