package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/charlesnunot/seller-settlement-service/internal/delivery/http/dto/request"
	"github.com/charlesnunot/seller-settlement-service/internal/delivery/http/dto/response"
	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/metrics"
	"github.com/charlesnunot/seller-settlement-service/internal/usecase"
	depositdto "github.com/charlesnunot/seller-settlement-service/internal/usecase/dto/deposit"
)

type DepositHandler struct {
	depositUC usecase.DepositUsecase
	metrics   *metrics.SettlementMetrics
}

func NewDepositHandler(depositUC usecase.DepositUsecase, m *metrics.SettlementMetrics) *DepositHandler {
	return &DepositHandler{depositUC: depositUC, metrics: m}
}

func (h *DepositHandler) CheckRequirement(w http.ResponseWriter, r *http.Request) {
	var req request.CheckDepositRequirementRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.depositUC.CheckDepositRequirement(&depositdto.CheckDepositRequirementInput{
		SellerID:           req.SellerID,
		PendingOrderAmount: req.PendingOrderAmount,
	})
	if err != nil {
		h.metrics.SettlementErrorsTotal.WithLabelValues("check_deposit_requirement").Inc()
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.DepositRequirementResponse{
		RequiresDeposit: out.RequiresDeposit,
		RequiredAmount:  out.RequiredAmount,
		Reason:          out.Reason,
	})
}

func (h *DepositHandler) Require(w http.ResponseWriter, r *http.Request) {
	var req request.RequireDepositRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	lot, err := h.depositUC.RequireDeposit(&depositdto.RequireDepositInput{
		SellerID:       req.SellerID,
		RequiredAmount: req.RequiredAmount,
		Currency:       req.Currency,
	})
	if err != nil {
		h.metrics.SettlementErrorsTotal.WithLabelValues("require_deposit").Inc()
		writeError(w, err)
		return
	}
	h.metrics.LotsRequiredTotal.WithLabelValues(lot.Currency).Inc()
	writeJSON(w, http.StatusCreated, toLotResponse(lot))
}

func (h *DepositHandler) MarkHeld(w http.ResponseWriter, r *http.Request) {
	lotID := chi.URLParam(r, "lotID")
	if err := h.depositUC.MarkHeld(lotID); err != nil {
		h.metrics.SettlementErrorsTotal.WithLabelValues("mark_held").Inc()
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil)
}

func (h *DepositHandler) Mature(w http.ResponseWriter, r *http.Request) {
	matured, err := h.depositUC.MatureLots(time.Now())
	if err != nil {
		h.metrics.SettlementErrorsTotal.WithLabelValues("mature_lots").Inc()
		writeError(w, err)
		return
	}
	h.metrics.LotsMaturedTotal.Add(float64(matured))
	writeJSON(w, http.StatusOK, response.MaturationResponse{Matured: matured})
}

func (h *DepositHandler) Refund(w http.ResponseWriter, r *http.Request) {
	lotID := chi.URLParam(r, "lotID")
	if err := h.depositUC.Refund(lotID); err != nil {
		h.metrics.SettlementErrorsTotal.WithLabelValues("refund_lot").Inc()
		writeError(w, err)
		return
	}
	h.metrics.LotsRefundedTotal.Inc()
	writeJSON(w, http.StatusOK, nil)
}

func (h *DepositHandler) ListBySeller(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "sellerID")
	lots, err := h.depositUC.GetLotsBySellerID(sellerID)
	if err != nil {
		writeError(w, err)
		return
	}
	resp := make([]response.DepositLotResponse, 0, len(lots))
	for _, lot := range lots {
		resp = append(resp, toLotResponse(lot))
	}
	writeJSON(w, http.StatusOK, resp)
}

func toLotResponse(lot *domain.DepositLot) response.DepositLotResponse {
	return response.DepositLotResponse{
		ID:             lot.ID,
		SellerID:       lot.SellerID,
		RequiredAmount: lot.RequiredAmount,
		Balance:        lot.Balance,
		Currency:       lot.Currency,
		Status:         string(lot.Status),
		RequiredAt:     lot.RequiredAt,
		HeldAt:         lot.HeldAt,
		RefundableAt:   lot.RefundableAt,
		RefundedAt:     lot.RefundedAt,
	}
}
