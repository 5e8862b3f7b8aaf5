// Package seed holds the demo dataset the platform ships with. It is the
// catalog source of last resort and the only one used in the default,
// fully-offline configuration.
package seed

import (
	"time"

	"github.com/decentraestate/marketd/internal/models"
)

// Properties returns the demo property listings.
func Properties() []models.Property {
	return []models.Property{
		{
			ID:                1,
			Name:              "Sunset Villa",
			Address:           "123 Ocean Drive, Miami, FL",
			Price:             1250000,
			Yield:             5.5,
			TokensAvailable:   450,
			TotalTokens:       1000,
			ImageURL:          "https://picsum.photos/seed/1/800/600",
			Beds:              4,
			Baths:             3,
			Sqft:              2800,
			Category:          "Real Estate",
			FractionalHolders: 12,
		},
		{
			ID:                2,
			Name:              "Mountain Retreat",
			Address:           "456 Aspen Way, Aspen, CO",
			Price:             2800000,
			Yield:             4.8,
			TokensAvailable:   800,
			TotalTokens:       2500,
			ImageURL:          "https://picsum.photos/seed/2/800/600",
			Beds:              6,
			Baths:             5,
			Sqft:              4500,
			Category:          "Real Estate",
			FractionalHolders: 25,
		},
		{
			ID:                3,
			Name:              "Urban Loft",
			Address:           "789 Broadway, New York, NY",
			Price:             850000,
			Yield:             6.2,
			TokensAvailable:   150,
			TotalTokens:       850,
			ImageURL:          "https://picsum.photos/seed/3/800/600",
			Beds:              2,
			Baths:             2,
			Sqft:              1500,
			Category:          "Real Estate",
			FractionalHolders: 31,
		},
		{
			ID:                4,
			Name:              "Lakeside Cottage",
			Address:           "101 Lakeview Rd, Lake Tahoe, CA",
			Price:             975000,
			Yield:             7.1,
			TokensAvailable:   900,
			TotalTokens:       975,
			ImageURL:          "https://picsum.photos/seed/4/800/600",
			Beds:              3,
			Baths:             2,
			Sqft:              1900,
			Category:          "Real Estate",
			FractionalHolders: 7,
		},
		{
			ID:                5,
			Name:              "Desert Oasis",
			Address:           "210 Cactus Lane, Scottsdale, AZ",
			Price:             1500000,
			Yield:             5.8,
			TokensAvailable:   600,
			TotalTokens:       1500,
			ImageURL:          "https://picsum.photos/seed/5/800/600",
			Beds:              5,
			Baths:             4,
			Sqft:              3500,
			Category:          "Real Estate",
			FractionalHolders: 18,
		},
		{
			ID:                6,
			Name:              "City Center Condo",
			Address:           "333 Main St, Chicago, IL",
			Price:             650000,
			Yield:             6.5,
			TokensAvailable:   325,
			TotalTokens:       650,
			ImageURL:          "https://picsum.photos/seed/6/800/600",
			Beds:              2,
			Baths:             2,
			Sqft:              1200,
			Category:          "Real Estate",
			FractionalHolders: 45,
		},
	}
}

// Holdings returns the demo portfolio for the implicit user.
func Holdings() []models.UserHolding {
	return []models.UserHolding{
		{PropertyID: 1, TokensOwned: 50, AccruedRent: 125.50},
		{PropertyID: 3, TokensOwned: 100, AccruedRent: 210.75},
		{PropertyID: 4, TokensOwned: 25, AccruedRent: 0},
	}
}

// Offers returns the demo order book, keyed by property id.
func Offers() map[int][]models.MarketOffer {
	return map[int][]models.MarketOffer{
		1: {
			{Type: models.OfferTypeBuy, Tokens: 10, PricePerToken: 1255.00, User: "0x1A...fE4"},
			{Type: models.OfferTypeBuy, Tokens: 5, PricePerToken: 1251.50, User: "0x9B...C4a"},
			{Type: models.OfferTypeSell, Tokens: 20, PricePerToken: 1260.00, User: "0x4D...aD1"},
		},
		3: {
			{Type: models.OfferTypeBuy, Tokens: 25, PricePerToken: 1001.00, User: "0x2C...dE7"},
			{Type: models.OfferTypeSell, Tokens: 15, PricePerToken: 1005.00, User: "0x8F...bB2"},
			{Type: models.OfferTypeSell, Tokens: 30, PricePerToken: 1008.50, User: "0x5E...fF9"},
		},
	}
}

// History returns the demo ownership history, keyed by property id.
func History() map[int][]models.TransactionHistory {
	return map[int][]models.TransactionHistory{
		1: {
			{Event: models.EventMint, From: "0x00...000", To: "0x7A...eB3", Tokens: 1000, Date: day(2023, 10, 26)},
			{Event: models.EventSale, From: "0x7A...eB3", To: "0x4D...aD1", Tokens: 20, Date: day(2023, 11, 15)},
			{Event: models.EventSale, From: "0x7A...eB3", To: "0x1A...fE4", Tokens: 50, Date: day(2023, 12, 1)},
			{Event: models.EventTransfer, From: "0x1A...fE4", To: "0x9B...C4a", Tokens: 5, Date: day(2024, 1, 20)},
		},
		3: {
			{Event: models.EventMint, From: "0x00...000", To: "0x3E...cB1", Tokens: 850, Date: day(2023, 9, 10)},
			{Event: models.EventSale, From: "0x3E...cB1", To: "0x8F...bB2", Tokens: 100, Date: day(2023, 10, 5)},
		},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
