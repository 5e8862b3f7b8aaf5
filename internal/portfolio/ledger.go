package portfolio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/decentraestate/marketd/internal/catalog"
	"github.com/decentraestate/marketd/internal/models"
)

// Ledger owns the single user's holdings. All mutation goes through the
// claim operations, which simulate backend settlement latency and enforce
// the single-flight constraint: Idle -> Pending -> Idle, with new claims
// rejected while Pending.
type Ledger struct {
	mu       sync.Mutex
	holdings []models.UserHolding
	receipts []ClaimReceipt
	pending  bool

	settleDelay time.Duration
	sink        Sink
	logger      Logger
}

// NewLedger validates the holdings against the catalog and builds the
// ledger. Token counts above a property's total supply and negative rent are
// hard errors, not sample-data assumptions.
func NewLedger(holdings []models.UserHolding, cat *catalog.Catalog, settleDelay time.Duration, sink Sink, logger Logger) (*Ledger, error) {
	for _, h := range holdings {
		if h.TokensOwned < 0 {
			return nil, fmt.Errorf("holding %d: negative token count", h.PropertyID)
		}
		if h.AccruedRent < 0 {
			return nil, fmt.Errorf("holding %d: negative accrued rent", h.PropertyID)
		}
		if p, ok := cat.ByID(h.PropertyID); ok && h.TokensOwned > p.TotalTokens {
			return nil, fmt.Errorf("holding %d: owns %d tokens of %d total", h.PropertyID, h.TokensOwned, p.TotalTokens)
		}
	}

	owned := make([]models.UserHolding, len(holdings))
	copy(owned, holdings)

	return &Ledger{
		holdings:    owned,
		settleDelay: settleDelay,
		sink:        sink,
		logger:      logger,
	}, nil
}

// Holdings returns a snapshot of the current positions.
func (l *Ledger) Holdings() []models.UserHolding {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make([]models.UserHolding, len(l.holdings))
	copy(snapshot, l.holdings)
	return snapshot
}

// Receipts returns the audit trail of settled claims, oldest first. The
// returned receipts are copies; mutating them does not touch the ledger.
func (l *Ledger) Receipts() []ClaimReceipt {
	l.mu.Lock()
	defer l.mu.Unlock()

	snapshot := make([]ClaimReceipt, len(l.receipts))
	copy(snapshot, l.receipts)
	return snapshot
}

// RestoreReceipts seeds the audit trail from previously persisted receipts.
// It is meant for startup, before the ledger serves any claims.
func (l *Ledger) RestoreReceipts(receipts []ClaimReceipt) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.receipts = make([]ClaimReceipt, len(receipts))
	copy(l.receipts, receipts)
}

// Claim implements the Claimer interface. Claiming a holding with no rent,
// or an unknown property id, settles an amount of 0 and leaves the ledger
// unchanged.
func (l *Ledger) Claim(ctx context.Context, propertyID int) (*ClaimReceipt, error) {
	if err := l.acquire(); err != nil {
		return nil, err
	}
	defer l.release()

	if err := l.settle(ctx); err != nil {
		return nil, err
	}

	l.mu.Lock()
	var amount float64
	for i := range l.holdings {
		if l.holdings[i].PropertyID == propertyID {
			amount = l.holdings[i].AccruedRent
			l.holdings[i].AccruedRent = 0
			break
		}
	}
	receipt := ClaimReceipt{
		ID:         uuid.New().String(),
		PropertyID: propertyID,
		Amount:     amount,
		SettledAt:  time.Now().UTC(),
	}
	l.receipts = append(l.receipts, receipt)
	holdings := make([]models.UserHolding, len(l.holdings))
	copy(holdings, l.holdings)
	l.mu.Unlock()

	l.record(ctx, &receipt, holdings)
	return &receipt, nil
}

// ClaimAll implements the Claimer interface. It zeroes every holding in one
// logical transaction and reports the total settled.
func (l *Ledger) ClaimAll(ctx context.Context) (*ClaimReceipt, error) {
	if err := l.acquire(); err != nil {
		return nil, err
	}
	defer l.release()

	if err := l.settle(ctx); err != nil {
		return nil, err
	}

	l.mu.Lock()
	var amount float64
	for i := range l.holdings {
		amount += l.holdings[i].AccruedRent
		l.holdings[i].AccruedRent = 0
	}
	receipt := ClaimReceipt{
		ID:        uuid.New().String(),
		All:       true,
		Amount:    amount,
		SettledAt: time.Now().UTC(),
	}
	l.receipts = append(l.receipts, receipt)
	holdings := make([]models.UserHolding, len(l.holdings))
	copy(holdings, l.holdings)
	l.mu.Unlock()

	l.record(ctx, &receipt, holdings)
	return &receipt, nil
}

// Totals derives the dashboard figures from the current holdings. Holdings
// whose property is missing from the catalog contribute nothing to the
// investment value.
func (l *Ledger) Totals(cat *catalog.Catalog) Totals {
	l.mu.Lock()
	defer l.mu.Unlock()

	var totals Totals
	for _, h := range l.holdings {
		totals.TotalAccruedRent += h.AccruedRent

		property, ok := cat.ByID(h.PropertyID)
		if !ok {
			continue
		}
		totals.TotalInvestmentValue += float64(h.TokensOwned) / float64(property.TotalTokens) * property.Price
	}
	return totals
}

func (l *Ledger) acquire() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.pending {
		return ErrClaimInFlight
	}
	l.pending = true
	return nil
}

func (l *Ledger) release() {
	l.mu.Lock()
	l.pending = false
	l.mu.Unlock()
}

// settle waits out the simulated settlement round trip. A cancelled context
// aborts the claim before any mutation.
func (l *Ledger) settle(ctx context.Context) error {
	if l.settleDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(l.settleDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// record persists the settlement outcome. The holdings snapshot goes out
// with the receipt so a restart never sees pre-claim rent figures.
func (l *Ledger) record(ctx context.Context, receipt *ClaimReceipt, holdings []models.UserHolding) {
	if l.sink == nil {
		return
	}
	if err := l.sink.SaveClaimReceipt(ctx, receipt); err != nil {
		l.logger.Error("failed to persist claim receipt", "receipt", receipt.ID, "error", err)
	}
	if err := l.sink.SaveHoldings(ctx, holdings); err != nil {
		l.logger.Error("failed to persist holdings", "receipt", receipt.ID, "error", err)
	}
}
