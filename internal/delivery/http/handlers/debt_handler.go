package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/charlesnunot/seller-settlement-service/internal/delivery/http/dto/request"
	"github.com/charlesnunot/seller-settlement-service/internal/delivery/http/dto/response"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/metrics"
	"github.com/charlesnunot/seller-settlement-service/internal/usecase"
	debtdto "github.com/charlesnunot/seller-settlement-service/internal/usecase/dto/debt"
)

type DebtHandler struct {
	debtUC  usecase.DebtUsecase
	metrics *metrics.SettlementMetrics
}

func NewDebtHandler(debtUC usecase.DebtUsecase, m *metrics.SettlementMetrics) *DebtHandler {
	return &DebtHandler{debtUC: debtUC, metrics: m}
}

func (h *DebtHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateDebtRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	debtID, err := h.debtUC.CreateDebt(&debtdto.CreateDebtInput{
		SellerID:  req.SellerID,
		OrderID:   req.OrderID,
		DisputeID: req.DisputeID,
		RefundID:  req.RefundID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Reason:    req.Reason,
	})
	if err != nil {
		h.metrics.SettlementErrorsTotal.WithLabelValues("create_debt").Inc()
		writeError(w, err)
		return
	}
	h.metrics.DebtsCreatedTotal.WithLabelValues(req.Reason, req.Currency).Inc()
	h.metrics.DebtsCreatedAmountTotal.WithLabelValues(req.Currency).Add(req.Amount)
	writeJSON(w, http.StatusCreated, response.CreateDebtResponse{DebtID: debtID})
}

func (h *DebtHandler) MarkCollected(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "debtID")
	if err := h.debtUC.MarkCollected(debtID); err != nil {
		h.metrics.SettlementErrorsTotal.WithLabelValues("mark_debt_collected").Inc()
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *DebtHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	debtID := chi.URLParam(r, "debtID")
	if err := h.debtUC.MarkPaid(debtID); err != nil {
		h.metrics.SettlementErrorsTotal.WithLabelValues("mark_debt_paid").Inc()
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *DebtHandler) ListBySeller(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "sellerID")
	debts, err := h.debtUC.GetDebtsBySellerID(sellerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, debts)
}
