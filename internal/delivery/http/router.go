package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/charlesnunot/seller-settlement-service/internal/delivery/http/handlers"
)

type Handlers struct {
	Deposit      *handlers.DepositHandler
	Deduction    *handlers.DeductionHandler
	Debt         *handlers.DebtHandler
	Obligation   *handlers.ObligationHandler
	Penalty      *handlers.PenaltyHandler
	Compensation *handlers.CompensationHandler
	Transfer     *handlers.TransferHandler
}

func NewRouter(h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/deposits", func(r chi.Router) {
			r.Post("/check-requirement", h.Deposit.CheckRequirement)
			r.Post("/", h.Deposit.Require)
			r.Post("/{lotID}/hold", h.Deposit.MarkHeld)
			r.Post("/{lotID}/refund", h.Deposit.Refund)
			r.Post("/mature", h.Deposit.Mature)
		})

		r.Post("/deductions", h.Deduction.Deduct)

		r.Route("/debts", func(r chi.Router) {
			r.Post("/", h.Debt.Create)
			r.Post("/{debtID}/collected", h.Debt.MarkCollected)
			r.Post("/{debtID}/paid", h.Debt.MarkPaid)
		})

		r.Route("/obligations", func(r chi.Router) {
			r.Post("/", h.Obligation.Create)
			r.Get("/overdue", h.Obligation.FindOverdue)
			r.Post("/{obligationID}/paid", h.Obligation.MarkPaid)
		})

		r.Route("/penalties", func(r chi.Router) {
			r.Post("/sweep", h.Penalty.Sweep)
			r.Post("/resolve", h.Penalty.Resolve)
		})

		r.Route("/compensations", func(r chi.Router) {
			r.Post("/detect", h.Compensation.Detect)
			r.Post("/{compensationID}/process", h.Compensation.Process)
		})

		r.Route("/transfers", func(r chi.Router) {
			r.Post("/", h.Transfer.CreatePayout)
			r.Post("/{transferID}/retry", h.Transfer.Retry)
			r.Post("/retry-batch", h.Transfer.RetryBatch)
		})

		r.Route("/sellers/{sellerID}", func(r chi.Router) {
			r.Get("/deposits", h.Deposit.ListBySeller)
			r.Get("/debts", h.Debt.ListBySeller)
			r.Get("/penalties", h.Penalty.ListActiveBySeller)
		})
	})

	return r
}
