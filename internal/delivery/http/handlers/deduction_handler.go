package handlers

import (
	"net/http"
	"time"

	"github.com/charlesnunot/seller-settlement-service/internal/delivery/http/dto/request"
	"github.com/charlesnunot/seller-settlement-service/internal/delivery/http/dto/response"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/metrics"
	"github.com/charlesnunot/seller-settlement-service/internal/usecase"
	deductiondto "github.com/charlesnunot/seller-settlement-service/internal/usecase/dto/deduction"
)

type DeductionHandler struct {
	deductionUC usecase.DeductionUsecase
	metrics     *metrics.SettlementMetrics
}

func NewDeductionHandler(deductionUC usecase.DeductionUsecase, m *metrics.SettlementMetrics) *DeductionHandler {
	return &DeductionHandler{deductionUC: deductionUC, metrics: m}
}

func (h *DeductionHandler) Deduct(w http.ResponseWriter, r *http.Request) {
	var req request.DeductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	started := time.Now()
	result, err := h.deductionUC.Deduct(&deductiondto.DeductInput{
		SellerID:    req.SellerID,
		Amount:      req.Amount,
		Currency:    req.Currency,
		Reason:      req.Reason,
		RelatedID:   req.RelatedID,
		RelatedType: req.RelatedType,
	})
	if err != nil {
		h.metrics.SettlementErrorsTotal.WithLabelValues("deduct").Inc()
		writeError(w, err)
		return
	}

	h.metrics.DeductionsTotal.WithLabelValues(req.Reason, req.Currency).Inc()
	h.metrics.DeductedAmountTotal.WithLabelValues(req.Reason).Add(result.DeductedAmount)
	h.metrics.DeductionDuration.WithLabelValues(req.Reason).Observe(time.Since(started).Seconds())
	if result.DeductedAmount < result.RequestedAmount {
		h.metrics.DeductionShortfalls.WithLabelValues(req.Reason).Inc()
	}

	writeJSON(w, http.StatusOK, response.DeductionResponse{
		DeductedAmount:   result.DeductedAmount,
		RemainingBalance: result.RemainingBalance,
	})
}
