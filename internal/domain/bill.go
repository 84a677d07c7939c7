package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDivisionPrecision is the number of fractional digits kept when a
// bill amount is divided among its owers.
const DefaultDivisionPrecision int32 = 16

// Bill is an expense fronted by one payer on behalf of a set of owers.
// A negative amount models a refund.
type Bill struct {
	Date    time.Time
	ID      string
	What    string
	PayerID string
	OwerIDs []string
	Amount  decimal.Decimal
}

// Owers returns the bill's ower ids once each, in first-seen order.
func (b *Bill) Owers() []string {
	seen := make(map[string]bool, len(b.OwerIDs))
	owers := make([]string, 0, len(b.OwerIDs))
	for _, id := range b.OwerIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		owers = append(owers, id)
	}
	return owers
}

// TotalWeight sums the weights of the bill's distinct owers. Owers missing
// from weights contribute nothing.
func (b *Bill) TotalWeight(weights map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, id := range b.Owers() {
		if w, ok := weights[id]; ok {
			total = total.Add(w)
		}
	}
	return total
}

// PayEach returns the amount owed per unit of weight. A bill without owers
// (or whose owers carry no weight) yields zero.
func (b *Bill) PayEach(weights map[string]decimal.Decimal, precision int32) decimal.Decimal {
	total := b.TotalWeight(weights)
	if total.IsZero() {
		return decimal.Zero
	}
	return b.Amount.DivRound(total, precision)
}

// HasOwer reports whether participantID owes a share of the bill.
func (b *Bill) HasOwer(participantID string) bool {
	for _, id := range b.OwerIDs {
		if id == participantID {
			return true
		}
	}
	return false
}

// Involves reports whether participantID paid or owes on the bill.
func (b *Bill) Involves(participantID string) bool {
	return b.PayerID == participantID || b.HasOwer(participantID)
}
