package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/usecase"
)

// BalanceResponse represents a participant balance in exported output.
type BalanceResponse struct {
	ParticipantID string          `json:"participant"`
	Name          string          `json:"name"`
	Balance       decimal.Decimal `json:"balance"`
}

// TransactionResponse represents a settlement instruction in exported output.
type TransactionResponse struct {
	Ower     string          `json:"ower"`
	Receiver string          `json:"receiver"`
	Amount   decimal.Decimal `json:"amount"`
}

// StatisticsResponse represents per-participant totals in exported output.
type StatisticsResponse struct {
	ParticipantID string          `json:"participant"`
	Name          string          `json:"name"`
	Paid          decimal.Decimal `json:"paid"`
	Spent         decimal.Decimal `json:"spent"`
	Balance       decimal.Decimal `json:"balance"`
}

// BalancesReportResponse is the exported form of a balance report.
type BalancesReportResponse struct {
	RunID      string             `json:"run_id"`
	ProjectID  string             `json:"project"`
	Balances   []*BalanceResponse `json:"balances"`
	Balanced   bool               `json:"balanced"`
	ComputedAt time.Time          `json:"computed_at"`
}

// SettlementReportResponse is the exported form of a settlement report.
type SettlementReportResponse struct {
	RunID        string                 `json:"run_id"`
	ProjectID    string                 `json:"project"`
	Transactions []*TransactionResponse `json:"transactions"`
	ComputedAt   time.Time              `json:"computed_at"`
}

func round(d decimal.Decimal) decimal.Decimal {
	return domain.RoundForDisplay(d, domain.DisplayPlaces)
}

func namesByID(participants []*domain.Participant) map[string]string {
	names := make(map[string]string, len(participants))
	for _, p := range participants {
		names[p.ID] = p.Name
	}
	return names
}

// TransactionFromDomain converts a domain transaction to response.
func TransactionFromDomain(t domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		Ower:     t.OwerID,
		Receiver: t.ReceiverID,
		Amount:   round(t.Amount),
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(txs []domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(txs))
	for i, t := range txs {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// BalancesFromDomain converts balances to responses, hiding inactive
// participants that are settled.
func BalancesFromDomain(balances domain.Balances, participants []*domain.Participant) []*BalanceResponse {
	names := namesByID(participants)
	shown := balances.Displayable(participants, domain.DisplayPlaces)

	result := make([]*BalanceResponse, len(shown))
	for i, b := range shown {
		result[i] = &BalanceResponse{
			ParticipantID: b.ParticipantID,
			Name:          names[b.ParticipantID],
			Balance:       round(b.Amount),
		}
	}
	return result
}

// StatisticsFromDomain converts statistics to responses.
func StatisticsFromDomain(stats []domain.Statistics, participants []*domain.Participant) []*StatisticsResponse {
	names := namesByID(participants)

	result := make([]*StatisticsResponse, len(stats))
	for i, s := range stats {
		result[i] = &StatisticsResponse{
			ParticipantID: s.ParticipantID,
			Name:          names[s.ParticipantID],
			Paid:          round(s.Paid),
			Spent:         round(s.Spent),
			Balance:       round(s.Balance),
		}
	}
	return result
}

// BalancesReportFromUseCase converts a balance report to response.
func BalancesReportFromUseCase(r *usecase.BalanceReport) *BalancesReportResponse {
	return &BalancesReportResponse{
		RunID:      r.RunID,
		ProjectID:  r.ProjectID,
		Balances:   BalancesFromDomain(r.Balances, r.Participants),
		Balanced:   r.Balanced,
		ComputedAt: r.ComputedAt,
	}
}

// SettlementReportFromUseCase converts a settlement report to response.
func SettlementReportFromUseCase(r *usecase.SettlementReport) *SettlementReportResponse {
	return &SettlementReportResponse{
		RunID:        r.RunID,
		ProjectID:    r.ProjectID,
		Transactions: TransactionsFromDomain(r.Transactions),
		ComputedAt:   r.ComputedAt,
	}
}
