package domain

import "github.com/shopspring/decimal"

// DisplayPlaces is the number of decimal places monetary values are rounded
// to at presentation boundaries.
const DisplayPlaces int32 = 2

// Balance is the net amount a participant is owed (positive) or owes
// (negative) across all bills of a project.
type Balance struct {
	ParticipantID string
	Amount        decimal.Decimal
}

// Balances holds one entry per participant, in participant order.
type Balances []Balance

// Get returns the balance of participantID and whether it is present.
func (b Balances) Get(participantID string) (decimal.Decimal, bool) {
	for _, bal := range b {
		if bal.ParticipantID == participantID {
			return bal.Amount, true
		}
	}
	return decimal.Zero, false
}

// Map returns the balances keyed by participant id.
func (b Balances) Map() map[string]decimal.Decimal {
	m := make(map[string]decimal.Decimal, len(b))
	for _, bal := range b {
		m[bal.ParticipantID] = bal.Amount
	}
	return m
}

// Sum adds every balance. It is zero for data produced from a consistent
// bill set; anything else points at an upstream data fault.
func (b Balances) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, bal := range b {
		sum = sum.Add(bal.Amount)
	}
	return sum
}

// IsBalanced reports whether |Sum| <= tolerance.
func (b Balances) IsBalanced(tolerance decimal.Decimal) bool {
	return b.Sum().Abs().LessThanOrEqual(tolerance)
}

// Displayable filters out inactive participants whose balance rounds to
// zero. Inactive participants who still owe or are owed money stay visible.
func (b Balances) Displayable(participants []*Participant, places int32) Balances {
	active := make(map[string]bool, len(participants))
	for _, p := range participants {
		active[p.ID] = p.Active
	}

	result := make(Balances, 0, len(b))
	for _, bal := range b {
		if active[bal.ParticipantID] || !RoundForDisplay(bal.Amount, places).IsZero() {
			result = append(result, bal)
		}
	}
	return result
}

// Statistics summarizes one participant's activity in a project.
type Statistics struct {
	ParticipantID string
	// Paid is the total of the bills the participant fronted.
	Paid decimal.Decimal
	// Spent is the total of the participant's shares, own bills included.
	Spent   decimal.Decimal
	Balance decimal.Decimal
}

// RoundForDisplay rounds d to places using round-half-to-even.
func RoundForDisplay(d decimal.Decimal, places int32) decimal.Decimal {
	return d.RoundBank(places)
}
