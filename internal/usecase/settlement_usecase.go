package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/infrastructure/metrics"
)

// SettlementUseCase computes balances and settlement plans for projects.
type SettlementUseCase struct {
	snapshotRepo SnapshotRepository
	idGen        IDGenerator
	planner      *SettlementPlanner
	opts         BalanceOptions
	tolerance    decimal.Decimal
	timeout      time.Duration
	logger       zerolog.Logger
	metrics      *metrics.Metrics
}

// SettlementOption customizes a SettlementUseCase.
type SettlementOption func(*SettlementUseCase)

// WithPlanner replaces the default settlement planner.
func WithPlanner(p *SettlementPlanner) SettlementOption {
	return func(uc *SettlementUseCase) { uc.planner = p }
}

// WithBalanceOptions sets the balance computation options.
func WithBalanceOptions(opts BalanceOptions) SettlementOption {
	return func(uc *SettlementUseCase) { uc.opts = opts }
}

// WithImbalanceTolerance sets the largest |Σ balances| accepted silently.
func WithImbalanceTolerance(tolerance decimal.Decimal) SettlementOption {
	return func(uc *SettlementUseCase) { uc.tolerance = tolerance }
}

// WithComputeTimeout bounds how long loading a snapshot may take. Zero or
// less keeps DefaultComputeTimeout.
func WithComputeTimeout(timeout time.Duration) SettlementOption {
	return func(uc *SettlementUseCase) {
		if timeout > 0 {
			uc.timeout = timeout
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) SettlementOption {
	return func(uc *SettlementUseCase) { uc.logger = logger }
}

// WithMetrics enables metric recording.
func WithMetrics(m *metrics.Metrics) SettlementOption {
	return func(uc *SettlementUseCase) { uc.metrics = m }
}

// NewSettlementUseCase creates a new SettlementUseCase.
func NewSettlementUseCase(
	snapshotRepo SnapshotRepository,
	idGen IDGenerator,
	opts ...SettlementOption,
) *SettlementUseCase {
	uc := &SettlementUseCase{
		snapshotRepo: snapshotRepo,
		idGen:        idGen,
		planner:      NewSettlementPlanner(),
		tolerance:    DefaultImbalanceTolerance,
		timeout:      DefaultComputeTimeout,
		logger:       zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// BalanceReport is the result of a balance computation for one project.
type BalanceReport struct {
	RunID        string
	ProjectID    string
	Participants []*domain.Participant
	Balances     domain.Balances
	// Imbalance is Σ balances; anything beyond the tolerance is an upstream
	// data fault.
	Imbalance  decimal.Decimal
	Balanced   bool
	ComputedAt time.Time
}

// SettlementReport is a balance report plus the transfers that settle it.
type SettlementReport struct {
	BalanceReport
	Transactions      []domain.Transaction
	ExactMatched      int
	ExactMatchSkipped bool
}

// GetBalances loads the project snapshot and computes every participant's
// balance.
func (uc *SettlementUseCase) GetBalances(ctx context.Context, projectID string) (*BalanceReport, error) {
	snapshot, err := uc.loadSnapshot(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return uc.computeBalances(snapshot, "balances"), nil
}

// StatisticsReport holds per-participant totals for one project.
type StatisticsReport struct {
	ProjectID    string
	Participants []*domain.Participant
	Statistics   []domain.Statistics
}

// GetStatistics returns paid, spent and balance per participant.
func (uc *SettlementUseCase) GetStatistics(ctx context.Context, projectID string) (*StatisticsReport, error) {
	snapshot, err := uc.loadSnapshot(ctx, projectID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	stats := ComputeStatistics(snapshot.Participants, snapshot.Bills, uc.opts)
	uc.observeBalance("statistics", len(snapshot.Bills), time.Since(start))

	return &StatisticsReport{
		ProjectID:    snapshot.ProjectID,
		Participants: snapshot.Participants,
		Statistics:   stats,
	}, nil
}

// SettleProject computes balances and the transactions that settle them.
func (uc *SettlementUseCase) SettleProject(ctx context.Context, projectID string) (*SettlementReport, error) {
	snapshot, err := uc.loadSnapshot(ctx, projectID)
	if err != nil {
		return nil, err
	}

	balanceReport := uc.computeBalances(snapshot, "settlement")

	start := time.Now()
	plan := uc.planner.PlanDetailed(balanceReport.Balances)
	elapsed := time.Since(start)

	if uc.metrics != nil {
		uc.metrics.SettlementsPlanned.Inc()
		uc.metrics.SettlementDuration.Observe(elapsed.Seconds())
		uc.metrics.SettlementTransactions.Observe(float64(len(plan.Transactions)))
		uc.metrics.ExactMatchTransactions.Add(float64(plan.ExactMatched))
		uc.metrics.ElidedTransactions.Add(float64(plan.Elided))
		if plan.ExactMatchSkipped {
			uc.metrics.ExactMatchSkipped.Inc()
		}
	}

	uc.logger.Info().
		Str("project_id", projectID).
		Str("run_id", balanceReport.RunID).
		Int("transactions", len(plan.Transactions)).
		Int("exact_matched", plan.ExactMatched).
		Int("elided", plan.Elided).
		Bool("exact_match_skipped", plan.ExactMatchSkipped).
		Dur("duration", elapsed).
		Msg("settlement planned")

	return &SettlementReport{
		BalanceReport:     *balanceReport,
		Transactions:      plan.Transactions,
		ExactMatched:      plan.ExactMatched,
		ExactMatchSkipped: plan.ExactMatchSkipped,
	}, nil
}

func (uc *SettlementUseCase) loadSnapshot(ctx context.Context, projectID string) (*domain.Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	snapshot, err := uc.snapshotRepo.GetSnapshot(ctx, projectID)
	if err != nil {
		uc.snapshotError("load")
		return nil, fmt.Errorf("failed to load project %s: %w", projectID, err)
	}

	if err := snapshot.Validate(); err != nil {
		uc.snapshotError("validate")
		return nil, fmt.Errorf("invalid snapshot for project %s: %w", projectID, err)
	}

	return snapshot, nil
}

func (uc *SettlementUseCase) computeBalances(snapshot *domain.Snapshot, operation string) *BalanceReport {
	runID := uc.idGen.Generate()

	start := time.Now()
	balances := ComputeBalances(snapshot.Participants, snapshot.Bills, uc.opts)
	uc.observeBalance(operation, len(snapshot.Bills), time.Since(start))

	imbalance := balances.Sum()
	balanced := imbalance.Abs().LessThanOrEqual(uc.tolerance)
	if !balanced {
		if uc.metrics != nil {
			uc.metrics.ImbalanceDetected.Inc()
		}
		uc.logger.Warn().
			Str("project_id", snapshot.ProjectID).
			Str("run_id", runID).
			Str("imbalance", imbalance.String()).
			Msg("balances do not sum to zero")
	}

	uc.logger.Debug().
		Str("project_id", snapshot.ProjectID).
		Str("run_id", runID).
		Int("participants", len(snapshot.Participants)).
		Int("bills", len(snapshot.Bills)).
		Msg("balances computed")

	return &BalanceReport{
		RunID:        runID,
		ProjectID:    snapshot.ProjectID,
		Participants: snapshot.Participants,
		Balances:     balances,
		Imbalance:    imbalance,
		Balanced:     balanced,
		ComputedAt:   time.Now().UTC(),
	}
}

func (uc *SettlementUseCase) observeBalance(operation string, bills int, elapsed time.Duration) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.BalanceComputations.WithLabelValues(operation).Inc()
	uc.metrics.BalanceDuration.Observe(elapsed.Seconds())
	uc.metrics.BillsProcessed.Add(float64(bills))
}

func (uc *SettlementUseCase) snapshotError(stage string) {
	if uc.metrics != nil {
		uc.metrics.SnapshotErrors.WithLabelValues(stage).Inc()
	}
}
