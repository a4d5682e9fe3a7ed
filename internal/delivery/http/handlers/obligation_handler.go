package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/charlesnunot/seller-settlement-service/internal/delivery/http/dto/request"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/metrics"
	"github.com/charlesnunot/seller-settlement-service/internal/usecase"
	obligationdto "github.com/charlesnunot/seller-settlement-service/internal/usecase/dto/obligation"
)

type ObligationHandler struct {
	obligationUC usecase.ObligationUsecase
	metrics      *metrics.SettlementMetrics
}

func NewObligationHandler(obligationUC usecase.ObligationUsecase, m *metrics.SettlementMetrics) *ObligationHandler {
	return &ObligationHandler{obligationUC: obligationUC, metrics: m}
}

func (h *ObligationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateObligationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	obligation, err := h.obligationUC.CreateObligation(&obligationdto.CreateObligationInput{
		SellerID: req.SellerID,
		OrderID:  req.OrderID,
		Amount:   req.Amount,
		Currency: req.Currency,
		DueDate:  req.DueDate,
	})
	if err != nil {
		h.metrics.SettlementErrorsTotal.WithLabelValues("create_obligation").Inc()
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, obligation)
}

func (h *ObligationHandler) FindOverdue(w http.ResponseWriter, r *http.Request) {
	overdue, err := h.obligationUC.FindOverdue(time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, overdue)
}

func (h *ObligationHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	obligationID := chi.URLParam(r, "obligationID")
	if err := h.obligationUC.MarkPaid(obligationID); err != nil {
		h.metrics.SettlementErrorsTotal.WithLabelValues("mark_obligation_paid").Inc()
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}
