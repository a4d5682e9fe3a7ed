package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SettlementMetrics bundles the engine's prometheus metrics
type SettlementMetrics struct {
	// Deductions
	DeductionsTotal       prometheus.CounterVec
	DeductedAmountTotal   prometheus.CounterVec
	DeductionShortfalls   prometheus.CounterVec
	DeductionDuration     prometheus.HistogramVec

	// Deposit lots
	LotsRequiredTotal prometheus.CounterVec
	LotsMaturedTotal  prometheus.Counter
	LotsRefundedTotal prometheus.Counter

	// Penalties
	PenaltiesAppliedTotal  prometheus.Counter
	PenaltiesResolvedTotal prometheus.Counter

	// Debts
	DebtsCreatedTotal       prometheus.CounterVec
	DebtsCreatedAmountTotal prometheus.CounterVec

	// Compensations
	CompensationsDetectedTotal prometheus.Counter
	CompensationsResolvedTotal prometheus.Counter
	CompensationsFailedTotal   prometheus.Counter

	// Transfers
	TransferRetriesTotal prometheus.CounterVec

	// Errors
	SettlementErrorsTotal prometheus.CounterVec
}

func NewSettlementMetrics() *SettlementMetrics {
	return &SettlementMetrics{
		DeductionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_deductions_total",
				Help: "Total number of deposit deductions",
			},
			[]string{"reason", "currency"},
		),

		DeductedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_deducted_amount_total",
				Help: "Total amount deducted from seller deposits, settlement currency",
			},
			[]string{"reason"},
		),

		DeductionShortfalls: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_deduction_shortfalls_total",
				Help: "Deductions that could not be fully covered by held lots",
			},
			[]string{"reason"},
		),

		DeductionDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "settlement_deduction_duration_seconds",
				Help:    "Deduction execution time in seconds",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"reason"},
		),

		LotsRequiredTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_deposit_lots_required_total",
				Help: "Deposit lots created in REQUIRED status",
			},
			[]string{"currency"},
		),

		LotsMaturedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "settlement_deposit_lots_matured_total",
				Help: "Held lots matured to REFUNDABLE",
			},
		),

		LotsRefundedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "settlement_deposit_lots_refunded_total",
				Help: "Lots refunded back to sellers",
			},
		),

		PenaltiesAppliedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "settlement_penalties_applied_total",
				Help: "Penalties applied by the overdue sweep",
			},
		),

		PenaltiesResolvedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "settlement_penalties_resolved_total",
				Help: "Penalties resolved after payment",
			},
		),

		DebtsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_debts_created_total",
				Help: "Seller debts registered",
			},
			[]string{"reason", "currency"},
		),

		DebtsCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_debts_created_amount_total",
				Help: "Total amount of registered seller debts",
			},
			[]string{"currency"},
		),

		CompensationsDetectedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "settlement_compensations_detected_total",
				Help: "Shortfall compensations detected",
			},
		),

		CompensationsResolvedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "settlement_compensations_resolved_total",
				Help: "Compensations resolved",
			},
		),

		CompensationsFailedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "settlement_compensations_failed_total",
				Help: "Compensations that failed processing",
			},
		),

		TransferRetriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_transfer_retries_total",
				Help: "Transfer retry attempts by outcome",
			},
			[]string{"outcome"},
		),

		SettlementErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "settlement_errors_total",
				Help: "Engine operation errors by operation",
			},
			[]string{"operation"},
		),
	}
}
