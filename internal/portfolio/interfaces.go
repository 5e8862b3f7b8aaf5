package portfolio

import (
	"context"
	"errors"
	"time"

	"github.com/decentraestate/marketd/internal/models"
)

// ErrClaimInFlight is returned when a claim is initiated while another one
// is still settling. At most one claim, single or bulk, may be outstanding.
var ErrClaimInFlight = errors.New("portfolio: claim already in flight")

// Claimer settles accrued rent into the user's wallet.
type Claimer interface {
	// Claim settles the accrued rent of a single holding.
	Claim(ctx context.Context, propertyID int) (*ClaimReceipt, error)

	// ClaimAll settles the accrued rent of every holding in one operation.
	ClaimAll(ctx context.Context) (*ClaimReceipt, error)
}

// Sink persists the outcome of a settlement: the receipt for the audit
// trail and the holdings with the claimed rent zeroed. Both writes belong to
// the same logical settlement step, so a restart rebuilds the ledger without
// resurrecting already-claimed rent.
type Sink interface {
	SaveClaimReceipt(ctx context.Context, receipt *ClaimReceipt) error
	SaveHoldings(ctx context.Context, holdings []models.UserHolding) error
}

// ClaimReceipt records the amount a claim actually settled. Claims are
// idempotent, so a repeated claim yields a receipt with Amount 0.
type ClaimReceipt struct {
	ID         string    `json:"id"`
	PropertyID int       `json:"property_id,omitempty"`
	All        bool      `json:"all,omitempty"`
	Amount     float64   `json:"amount"`
	SettledAt  time.Time `json:"settled_at"`
}

// Totals are the derived portfolio figures shown on the dashboard.
type Totals struct {
	TotalAccruedRent     float64 `json:"total_accrued_rent"`
	TotalInvestmentValue float64 `json:"total_investment_value"`
}

type Logger interface {
	Error(msg string, fields ...interface{})
	Info(msg string, fields ...interface{})
}
