package catalog

import (
	"context"
	"fmt"

	"github.com/decentraestate/marketd/internal/models"
)

// Catalog is the read-only property collection every other component reads
// from. Entries are immutable after Load.
type Catalog struct {
	properties []models.Property
	byID       map[int]models.Property
}

// Load tries each source in order and builds the catalog from the first one
// that returns a valid property list.
func Load(ctx context.Context, sources []Source, logger Logger) (*Catalog, error) {
	for _, source := range sources {
		properties, err := source.Fetch(ctx)
		if err != nil {
			logger.Error("failed to fetch properties", "source", source.Name(), "error", err)
			continue
		}
		if err := validate(properties); err != nil {
			logger.Error("rejected property list", "source", source.Name(), "error", err)
			continue
		}
		logger.Info("loaded catalog", "source", source.Name(), "properties", len(properties))
		return New(properties), nil
	}

	return nil, fmt.Errorf("failed to load catalog from all sources")
}

// New builds a catalog directly from a property list. The caller vouches for
// the data; Load is the validating path.
func New(properties []models.Property) *Catalog {
	byID := make(map[int]models.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}
	return &Catalog{properties: properties, byID: byID}
}

// Properties returns all listings in source order.
func (c *Catalog) Properties() []models.Property {
	return c.properties
}

// ByID looks up a single listing.
func (c *Catalog) ByID(id int) (models.Property, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func validate(properties []models.Property) error {
	seen := make(map[int]bool, len(properties))
	for _, p := range properties {
		if seen[p.ID] {
			return fmt.Errorf("duplicate property id %d", p.ID)
		}
		seen[p.ID] = true

		if p.Price <= 0 {
			return fmt.Errorf("property %d: price must be positive", p.ID)
		}
		if p.TotalTokens <= 0 {
			return fmt.Errorf("property %d: total tokens must be positive", p.ID)
		}
		if p.TokensAvailable < 0 || p.TokensAvailable > p.TotalTokens {
			return fmt.Errorf("property %d: tokens available out of range", p.ID)
		}
		if p.FractionalHolders < 0 {
			return fmt.Errorf("property %d: negative holder count", p.ID)
		}
	}
	return nil
}
