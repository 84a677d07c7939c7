package domain

import "github.com/shopspring/decimal"

// Transaction is a suggested transfer from an ower to a receiver that moves
// both balances toward zero.
type Transaction struct {
	OwerID     string
	ReceiverID string
	Amount     decimal.Decimal
}

// Validate validates the settlement instruction.
func (t *Transaction) Validate() error {
	if t.OwerID == t.ReceiverID {
		return ErrSameParticipant
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}

// IsDust reports whether the amount rounds to zero at the given number of
// decimal places.
func (t *Transaction) IsDust(places int32) bool {
	return RoundForDisplay(t.Amount, places).IsZero()
}

// ApplyTransactions replays transactions on top of an empty ledger: owers are
// debited and receivers credited. Settling balances b with plan p yields
// ApplyTransactions(p) ≈ b.
func ApplyTransactions(txs []Transaction) map[string]decimal.Decimal {
	result := make(map[string]decimal.Decimal)
	for _, t := range txs {
		result[t.OwerID] = result[t.OwerID].Sub(t.Amount)
		result[t.ReceiverID] = result[t.ReceiverID].Add(t.Amount)
	}
	return result
}
