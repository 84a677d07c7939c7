package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
)

// DefaultMaxExactMatchDebts bounds the exponential subset search. Above it
// the planner goes straight to greedy matching.
const DefaultMaxExactMatchDebts = 30

// SettlementPlanner turns net balances into transfers that zero them out.
// The zero value is ready to use with default thresholds.
type SettlementPlanner struct {
	// MaxExactMatchDebts caps the number of outstanding debts for which the
	// exact-match phase runs. Zero means DefaultMaxExactMatchDebts; a
	// negative value disables the phase.
	MaxExactMatchDebts int
	// DisplayPlaces is the precision below which a transfer is elided.
	// Zero or less means domain.DisplayPlaces.
	DisplayPlaces int32
}

// NewSettlementPlanner creates a planner with default thresholds.
func NewSettlementPlanner() *SettlementPlanner {
	return &SettlementPlanner{
		MaxExactMatchDebts: DefaultMaxExactMatchDebts,
		DisplayPlaces:      domain.DisplayPlaces,
	}
}

// SettlementPlan is the outcome of one planning run.
type SettlementPlan struct {
	Transactions []domain.Transaction
	// ExactMatched counts transfers produced by the exact-match phase.
	ExactMatched int
	// ExactMatchSkipped is set when there were too many debts to search.
	ExactMatchSkipped bool
	// Elided counts transfers dropped because they round to zero.
	Elided int
}

func (p *SettlementPlanner) maxExactMatchDebts() int {
	if p.MaxExactMatchDebts == 0 {
		return DefaultMaxExactMatchDebts
	}
	return p.MaxExactMatchDebts
}

func (p *SettlementPlanner) displayPlaces() int32 {
	if p.DisplayPlaces <= 0 {
		return domain.DisplayPlaces
	}
	return p.DisplayPlaces
}

type position struct {
	participantID string
	amount        decimal.Decimal
}

// Plan returns the settlement transactions for balances.
func (p *SettlementPlanner) Plan(balances domain.Balances) []domain.Transaction {
	return p.PlanDetailed(balances).Transactions
}

// PlanDetailed settles balances in two phases. First every credit is paid by
// a subset of debts summing exactly to it, when one exists. Remaining credits
// and debts are then matched greedily in order. Exact-match transfers come
// first in the result. Imbalanced input still terminates; the leftover side is
// left unsettled.
func (p *SettlementPlanner) PlanDetailed(balances domain.Balances) *SettlementPlan {
	var credits, debts []*position
	for _, b := range balances {
		switch {
		case b.Amount.IsPositive():
			credits = append(credits, &position{participantID: b.ParticipantID, amount: b.Amount})
		case b.Amount.IsNegative():
			debts = append(debts, &position{participantID: b.ParticipantID, amount: b.Amount.Neg()})
		}
	}

	plan := &SettlementPlan{}
	var txs []domain.Transaction

	if len(debts) > p.maxExactMatchDebts() {
		plan.ExactMatchSkipped = true
	} else {
		remaining := make([]*position, 0, len(credits))
		for _, credit := range credits {
			match := exactMatch(credit.amount, debts, 0)
			if match == nil {
				remaining = append(remaining, credit)
				continue
			}

			matched := make(map[int]bool, len(match))
			for _, i := range match {
				txs = append(txs, domain.Transaction{
					OwerID:     debts[i].participantID,
					ReceiverID: credit.participantID,
					Amount:     debts[i].amount,
				})
				matched[i] = true
			}
			plan.ExactMatched += len(match)

			kept := make([]*position, 0, len(debts)-len(match))
			for i, d := range debts {
				if !matched[i] {
					kept = append(kept, d)
				}
			}
			debts = kept
		}
		credits = remaining
	}

	for len(credits) > 0 && len(debts) > 0 {
		credit, debt := credits[0], debts[0]

		amount := decimal.Min(credit.amount, debt.amount)
		txs = append(txs, domain.Transaction{
			OwerID:     debt.participantID,
			ReceiverID: credit.participantID,
			Amount:     amount,
		})

		credit.amount = credit.amount.Sub(amount)
		debt.amount = debt.amount.Sub(amount)
		if credit.amount.IsZero() {
			credits = credits[1:]
		}
		if debt.amount.IsZero() {
			debts = debts[1:]
		}
	}

	places := p.displayPlaces()
	plan.Transactions = make([]domain.Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.IsDust(places) {
			plan.Elided++
			continue
		}
		plan.Transactions = append(plan.Transactions, tx)
	}

	return plan
}

// exactMatch searches debts[start:] for a subset summing to target and
// returns its indices, deepest pick first. A debt larger than the target is
// skipped; one equal to it ends the search. Otherwise including the debt is
// tried before excluding it.
func exactMatch(target decimal.Decimal, debts []*position, start int) []int {
	for i := start; i < len(debts); i++ {
		amount := debts[i].amount
		if amount.GreaterThan(target) {
			continue
		}

		if amount.Equal(target) {
			return []int{i}
		}

		if match := exactMatch(target.Sub(amount), debts, i+1); match != nil {
			return append(match, i)
		}
	}

	return nil
}
