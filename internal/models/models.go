package models

import "time"

// Property is a tokenized real-estate listing. Entries are immutable once
// loaded into the catalog.
type Property struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Address           string  `json:"address"`
	Price             float64 `json:"price"`
	Yield             float64 `json:"yield"`
	TokensAvailable   int     `json:"tokens_available"`
	TotalTokens       int     `json:"total_tokens"`
	ImageURL          string  `json:"image_url"`
	Beds              int     `json:"beds"`
	Baths             int     `json:"baths"`
	Sqft              int     `json:"sqft"`
	Category          string  `json:"category"`
	FractionalHolders int     `json:"fractional_holders"`
}

// PercentSold returns the share of tokens already sold, in [0, 100].
func (p Property) PercentSold() float64 {
	if p.TotalTokens <= 0 {
		return 0
	}
	return float64(p.TotalTokens-p.TokensAvailable) / float64(p.TotalTokens) * 100
}

// UserHolding is one position in the (single implicit) user's portfolio.
// AccruedRent is mutated only by claim operations.
type UserHolding struct {
	PropertyID  int     `json:"property_id"`
	TokensOwned int     `json:"tokens_owned"`
	AccruedRent float64 `json:"accrued_rent"`
}

// Offer side on the secondary market.
const (
	OfferTypeBuy  = "Buy"
	OfferTypeSell = "Sell"
)

// MarketOffer is a standing buy or sell offer for a property's tokens.
// Display data only.
type MarketOffer struct {
	Type          string  `json:"type"`
	Tokens        int     `json:"tokens"`
	PricePerToken float64 `json:"price_per_token"`
	User          string  `json:"user"`
}

// Transaction history event kinds.
const (
	EventMint     = "Mint"
	EventTransfer = "Transfer"
	EventSale     = "Sale"
)

// TransactionHistory is one ownership event for a property. Append-only in
// concept; read-only here.
type TransactionHistory struct {
	Event  string    `json:"event"`
	From   string    `json:"from"`
	To     string    `json:"to"`
	Tokens int       `json:"tokens"`
	Date   time.Time `json:"date"`
}
