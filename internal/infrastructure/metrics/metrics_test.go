package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := New(registry)

	if m.BalanceComputations == nil || m.SettlementDuration == nil || m.SnapshotErrors == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.BalanceComputations.WithLabelValues("balances").Inc()
	m.SnapshotErrors.WithLabelValues("load").Inc()

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestCountersIncrement(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.SettlementsPlanned.Inc()
	m.SettlementsPlanned.Inc()
	m.ExactMatchSkipped.Inc()

	if got := testutil.ToFloat64(m.SettlementsPlanned); got != 2 {
		t.Fatalf("expected 2 planned settlements, got %v", got)
	}

	if got := testutil.ToFloat64(m.ExactMatchSkipped); got != 1 {
		t.Fatalf("expected 1 skipped exact match, got %v", got)
	}
}

func TestNewTwiceOnSameRegistryPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	New(registry)

	defer func() {
		if recover() == nil {
			t.Fatal("expected duplicate registration to panic")
		}
	}()
	New(registry)
}
