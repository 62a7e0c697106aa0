package anchor

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

// Metrics represents the anchor contract metrics
type Metrics struct {
	// No.of block commitments accepted
	Commitments metrics.Counter

	// No.of deposits created
	Deposits metrics.Counter

	// No.of withdrawals settled
	SettledWithdrawals metrics.Counter

	// Acknowledged escrow balance
	EscrowBalance metrics.Gauge

	// Approved, not yet settled withdrawal total
	ReservedBalance metrics.Gauge
}

// GetPrometheusMetrics return the anchor metrics instance
func GetPrometheusMetrics(namespace string, labelsWithValues ...string) *Metrics {
	labels := []string{}

	for i := 0; i < len(labelsWithValues); i += 2 {
		labels = append(labels, labelsWithValues[i])
	}

	return &Metrics{
		Commitments: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "anchor",
			Name:      "commitments",
			Help:      "Number of block commitments accepted.",
		}, labels).With(labelsWithValues...),
		Deposits: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "anchor",
			Name:      "deposits",
			Help:      "Number of deposits created.",
		}, labels).With(labelsWithValues...),
		SettledWithdrawals: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "anchor",
			Name:      "settled_withdrawals",
			Help:      "Number of withdrawals settled.",
		}, labels).With(labelsWithValues...),
		EscrowBalance: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "anchor",
			Name:      "escrow_balance",
			Help:      "Acknowledged escrow balance.",
		}, labels).With(labelsWithValues...),
		ReservedBalance: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "anchor",
			Name:      "reserved_balance",
			Help:      "Approved, not yet settled withdrawal total.",
		}, labels).With(labelsWithValues...),
	}
}

// NilMetrics will return the non operational metrics
func NilMetrics() *Metrics {
	return &Metrics{
		Commitments:        discard.NewCounter(),
		Deposits:           discard.NewCounter(),
		SettledWithdrawals: discard.NewCounter(),
		EscrowBalance:      discard.NewGauge(),
		ReservedBalance:    discard.NewGauge(),
	}
}
