// Package market exposes the read-only secondary-market data shown on a
// property's detail view: standing offers and the ownership history.
package market

import (
	"github.com/decentraestate/marketd/internal/models"
)

// Book holds the per-property offer and history registries. Entries are
// display data only; there are no lifecycle operations.
type Book struct {
	offers  map[int][]models.MarketOffer
	history map[int][]models.TransactionHistory
}

func NewBook(offers map[int][]models.MarketOffer, history map[int][]models.TransactionHistory) *Book {
	if offers == nil {
		offers = map[int][]models.MarketOffer{}
	}
	if history == nil {
		history = map[int][]models.TransactionHistory{}
	}
	return &Book{offers: offers, history: history}
}

// Offers returns the standing offers for a property, insertion order. A
// property without offers yields an empty slice, not an error.
func (b *Book) Offers(propertyID int) []models.MarketOffer {
	offers := b.offers[propertyID]
	if offers == nil {
		return []models.MarketOffer{}
	}
	return offers
}

// History returns the ownership events for a property, oldest first.
func (b *Book) History(propertyID int) []models.TransactionHistory {
	history := b.history[propertyID]
	if history == nil {
		return []models.TransactionHistory{}
	}
	return history
}
