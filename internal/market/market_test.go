package market

import (
	"testing"

	"github.com/decentraestate/marketd/internal/models"
	"github.com/decentraestate/marketd/internal/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookOffers(t *testing.T) {
	book := NewBook(seed.Offers(), seed.History())

	offers := book.Offers(1)
	require.Len(t, offers, 3)
	assert.Equal(t, models.OfferTypeBuy, offers[0].Type)
	assert.Equal(t, 1255.00, offers[0].PricePerToken)

	assert.Empty(t, book.Offers(2), "property without offers yields an empty slice")
}

func TestBookHistory(t *testing.T) {
	book := NewBook(seed.Offers(), seed.History())

	history := book.History(3)
	require.Len(t, history, 2)
	assert.Equal(t, models.EventMint, history[0].Event)
	assert.Equal(t, 850, history[0].Tokens)

	assert.Empty(t, book.History(6))
}

func TestBookWithNilMaps(t *testing.T) {
	book := NewBook(nil, nil)
	assert.Empty(t, book.Offers(1))
	assert.Empty(t, book.History(1))
}
