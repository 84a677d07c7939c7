package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Balance metrics
	BalanceComputations *prometheus.CounterVec
	BalanceDuration     prometheus.Histogram
	BillsProcessed      prometheus.Counter
	ImbalanceDetected   prometheus.Counter

	// Settlement metrics
	SettlementsPlanned     prometheus.Counter
	SettlementDuration     prometheus.Histogram
	SettlementTransactions prometheus.Histogram
	ExactMatchTransactions prometheus.Counter
	ExactMatchSkipped      prometheus.Counter
	ElidedTransactions     prometheus.Counter

	// Snapshot metrics
	SnapshotErrors *prometheus.CounterVec
}

// New creates all metrics and registers them with reg. A nil reg uses the
// default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		// Balance metrics
		BalanceComputations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splitledger_balance_computations_total",
				Help: "Total balance computations by operation",
			},
			[]string{"operation"},
		),
		BalanceDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "splitledger_balance_duration_seconds",
			Help:    "Duration of balance computations",
			Buckets: prometheus.DefBuckets,
		}),
		BillsProcessed: factory.NewCounter(prometheus.CounterOpts{
			Name: "splitledger_bills_processed_total",
			Help: "Total number of bills folded into balances",
		}),
		ImbalanceDetected: factory.NewCounter(prometheus.CounterOpts{
			Name: "splitledger_imbalance_detected_total",
			Help: "Total number of balance sets whose sum exceeded the tolerance",
		}),

		// Settlement metrics
		SettlementsPlanned: factory.NewCounter(prometheus.CounterOpts{
			Name: "splitledger_settlements_planned_total",
			Help: "Total number of settlement plans computed",
		}),
		SettlementDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "splitledger_settlement_duration_seconds",
			Help:    "Duration of settlement planning",
			Buckets: prometheus.DefBuckets,
		}),
		SettlementTransactions: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "splitledger_settlement_transactions",
			Help:    "Number of transactions per settlement plan",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100},
		}),
		ExactMatchTransactions: factory.NewCounter(prometheus.CounterOpts{
			Name: "splitledger_exact_match_transactions_total",
			Help: "Total number of transactions produced by exact subset matching",
		}),
		ExactMatchSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "splitledger_exact_match_skipped_total",
			Help: "Total number of plans where exact matching was skipped for too many debts",
		}),
		ElidedTransactions: factory.NewCounter(prometheus.CounterOpts{
			Name: "splitledger_elided_transactions_total",
			Help: "Total number of transactions dropped because they round to zero",
		}),

		// Snapshot metrics
		SnapshotErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "splitledger_snapshot_errors_total",
				Help: "Total snapshot load or validation errors",
			},
			[]string{"stage"},
		),
	}
}
