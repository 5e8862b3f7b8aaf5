package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/decentraestate/marketd/internal/models"
)

// Criteria narrows the catalog by price range and minimum percent of tokens
// sold. Zero value means no constraint.
type Criteria struct {
	MinPrice float64
	MaxPrice float64

	MinPercentSold    float64
	HasMinPercentSold bool
}

// ParseCriteria builds Criteria from raw form/query input. Empty or
// unparsable values impose no constraint; bad input is never an error.
func ParseCriteria(minPrice, maxPrice, minPercentSold string) Criteria {
	c := Criteria{MaxPrice: math.Inf(1)}

	if v, err := strconv.ParseFloat(strings.TrimSpace(minPrice), 64); err == nil {
		c.MinPrice = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(maxPrice), 64); err == nil {
		c.MaxPrice = v
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(minPercentSold), 64); err == nil {
		c.MinPercentSold = v
		c.HasMinPercentSold = true
	}

	return c
}

// Filter returns the subset of properties matching the criteria, preserving
// input order. Safe to call on every keystroke: pure, no allocation beyond
// the result slice.
func Filter(properties []models.Property, c Criteria) []models.Property {
	maxPrice := c.MaxPrice
	if maxPrice == 0 {
		maxPrice = math.Inf(1)
	}

	result := make([]models.Property, 0, len(properties))
	for _, p := range properties {
		if p.Price < c.MinPrice || p.Price > maxPrice {
			continue
		}
		if c.HasMinPercentSold && p.PercentSold() < c.MinPercentSold {
			continue
		}
		result = append(result, p)
	}
	return result
}
