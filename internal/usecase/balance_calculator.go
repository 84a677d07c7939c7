package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
)

// BalanceOptions tunes balance computation.
type BalanceOptions struct {
	// DivisionPrecision is the number of fractional digits kept by the single
	// per-bill division. Zero means domain.DefaultDivisionPrecision.
	DivisionPrecision int32
}

func (o BalanceOptions) precision() int32 {
	if o.DivisionPrecision <= 0 {
		return domain.DefaultDivisionPrecision
	}
	return o.DivisionPrecision
}

// ComputeBalances returns the net balance of every participant over bills:
// what others owe them as payer minus what they owe as ower. Participants
// without bills get zero. The payer's own share is never accumulated, so the
// balances always sum to exactly zero.
func ComputeBalances(participants []*domain.Participant, bills []*domain.Bill, opts BalanceOptions) domain.Balances {
	weights := domain.WeightsByID(participants)
	precision := opts.precision()

	shouldPay := make(map[string]decimal.Decimal, len(participants))
	shouldReceive := make(map[string]decimal.Decimal, len(participants))
	for _, p := range participants {
		shouldPay[p.ID] = decimal.Zero
		shouldReceive[p.ID] = decimal.Zero
	}

	for _, bill := range bills {
		payEach := bill.PayEach(weights, precision)
		if payEach.IsZero() {
			continue
		}

		for _, owerID := range bill.Owers() {
			if owerID == bill.PayerID {
				continue
			}

			weight, ok := weights[owerID]
			if !ok {
				continue
			}

			share := payEach.Mul(weight)
			shouldPay[owerID] = shouldPay[owerID].Add(share)
			if _, ok := weights[bill.PayerID]; ok {
				shouldReceive[bill.PayerID] = shouldReceive[bill.PayerID].Add(share)
			}
		}
	}

	balances := make(domain.Balances, 0, len(participants))
	for _, p := range participants {
		balances = append(balances, domain.Balance{
			ParticipantID: p.ID,
			Amount:        shouldReceive[p.ID].Sub(shouldPay[p.ID]),
		})
	}

	return balances
}

// ComputeStatistics returns, for every participant, what they fronted, what
// they consumed (including their shares of their own bills) and their
// balance.
func ComputeStatistics(participants []*domain.Participant, bills []*domain.Bill, opts BalanceOptions) []domain.Statistics {
	weights := domain.WeightsByID(participants)
	precision := opts.precision()

	paid := make(map[string]decimal.Decimal, len(participants))
	spent := make(map[string]decimal.Decimal, len(participants))

	for _, bill := range bills {
		paid[bill.PayerID] = paid[bill.PayerID].Add(bill.Amount)

		payEach := bill.PayEach(weights, precision)
		for _, owerID := range bill.Owers() {
			if weight, ok := weights[owerID]; ok {
				spent[owerID] = spent[owerID].Add(payEach.Mul(weight))
			}
		}
	}

	balances := ComputeBalances(participants, bills, opts)

	stats := make([]domain.Statistics, 0, len(participants))
	for i, p := range participants {
		stats = append(stats, domain.Statistics{
			ParticipantID: p.ID,
			Paid:          paid[p.ID],
			Spent:         spent[p.ID],
			Balance:       balances[i].Amount,
		})
	}

	return stats
}
