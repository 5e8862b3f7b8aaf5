package catalog

import (
	"testing"

	"github.com/decentraestate/marketd/internal/models"
	"github.com/decentraestate/marketd/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentSoldBounds(t *testing.T) {
	for _, p := range seed.Properties() {
		sold := p.PercentSold()
		assert.GreaterOrEqual(t, sold, 0.0, "property %d", p.ID)
		assert.LessOrEqual(t, sold, 100.0, "property %d", p.ID)
	}
}

func TestFilter(t *testing.T) {
	properties := seed.Properties()

	tests := []struct {
		name           string
		minPrice       string
		maxPrice       string
		minPercentSold string
		wantIDs        []int
	}{
		{
			name:    "no constraints returns everything",
			wantIDs: []int{1, 2, 3, 4, 5, 6},
		},
		{
			name:     "closed price interval",
			minPrice: "900000",
			maxPrice: "1300000",
			wantIDs:  []int{1, 4},
		},
		{
			name:     "min price boundary is inclusive",
			minPrice: "975000",
			maxPrice: "975000",
			wantIDs:  []int{4},
		},
		{
			name:           "minimum ownership sold",
			minPercentSold: "50",
			wantIDs:        []int{1, 2, 3, 5, 6},
		},
		{
			name:           "empty ownership string imposes no constraint",
			minPrice:       "900000",
			maxPrice:       "1300000",
			minPercentSold: "",
			wantIDs:        []int{1, 4},
		},
		{
			name:           "unparsable ownership string imposes no constraint",
			minPrice:       "900000",
			maxPrice:       "1300000",
			minPercentSold: "abc",
			wantIDs:        []int{1, 4},
		},
		{
			name:     "unparsable price bounds impose no constraint",
			minPrice: "cheap",
			maxPrice: "expensive",
			wantIDs:  []int{1, 2, 3, 4, 5, 6},
		},
		{
			name:     "nothing matches",
			minPrice: "5000000",
			wantIDs:  []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ParseCriteria(tt.minPrice, tt.maxPrice, tt.minPercentSold)
			got := Filter(properties, c)

			ids := make([]int, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterIsIdentityWithoutCriteria(t *testing.T) {
	properties := seed.Properties()
	got := Filter(properties, ParseCriteria("", "", ""))
	assert.Equal(t, properties, got)
}

func TestFilterPreservesOrder(t *testing.T) {
	properties := seed.Properties()
	got := Filter(properties, ParseCriteria("800000", "", ""))

	var prev int
	for _, p := range got {
		require.Greater(t, p.ID, prev, "catalog order must be preserved")
		prev = p.ID
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	properties := seed.Properties()
	original := make([]models.Property, len(properties))
	copy(original, properties)

	Filter(properties, ParseCriteria("900000", "1300000", "10"))
	assert.Equal(t, original, properties)
}
