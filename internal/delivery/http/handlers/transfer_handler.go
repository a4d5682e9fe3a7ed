package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/charlesnunot/seller-settlement-service/internal/delivery/http/dto/request"
	"github.com/charlesnunot/seller-settlement-service/internal/delivery/http/dto/response"
	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/metrics"
	"github.com/charlesnunot/seller-settlement-service/internal/usecase"
	transferdto "github.com/charlesnunot/seller-settlement-service/internal/usecase/dto/transfer"
)

type TransferHandler struct {
	transferUC usecase.TransferUsecase
	metrics    *metrics.SettlementMetrics
	retryLimit int
}

func NewTransferHandler(transferUC usecase.TransferUsecase, m *metrics.SettlementMetrics, retryLimit int) *TransferHandler {
	return &TransferHandler{transferUC: transferUC, metrics: m, retryLimit: retryLimit}
}

func (h *TransferHandler) CreatePayout(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePayoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	transfer, err := h.transferUC.CreatePayout(&transferdto.CreatePayoutInput{
		SellerID: req.SellerID,
		Amount:   req.Amount,
		Currency: req.Currency,
	})
	if err != nil {
		h.metrics.SettlementErrorsTotal.WithLabelValues("create_payout").Inc()
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTransferResponse(transfer))
}

func (h *TransferHandler) Retry(w http.ResponseWriter, r *http.Request) {
	transferID := chi.URLParam(r, "transferID")
	if err := h.transferUC.Retry(transferID); err != nil {
		h.metrics.TransferRetriesTotal.WithLabelValues("failed").Inc()
		h.metrics.SettlementErrorsTotal.WithLabelValues("retry_transfer").Inc()
		writeError(w, err)
		return
	}
	h.metrics.TransferRetriesTotal.WithLabelValues("succeeded").Inc()
	writeJSON(w, http.StatusOK, nil)
}

func (h *TransferHandler) RetryBatch(w http.ResponseWriter, r *http.Request) {
	var req request.BatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	limit := req.Limit
	if limit <= 0 {
		limit = h.retryLimit
	}
	out, err := h.transferUC.RetryBatch(limit)
	if err != nil {
		h.metrics.SettlementErrorsTotal.WithLabelValues("retry_transfer_batch").Inc()
		writeError(w, err)
		return
	}
	h.metrics.TransferRetriesTotal.WithLabelValues("succeeded").Add(float64(out.SucceededCount))
	h.metrics.TransferRetriesTotal.WithLabelValues("failed").Add(float64(out.FailedCount))
	writeJSON(w, http.StatusOK, response.RetryBatchResponse{
		SucceededCount: out.SucceededCount,
		FailedCount:    out.FailedCount,
	})
}

func toTransferResponse(transfer *domain.TransferRecord) response.TransferResponse {
	return response.TransferResponse{
		ID:             transfer.ID,
		SellerID:       transfer.SellerID,
		Amount:         transfer.Amount,
		Currency:       transfer.Currency,
		Status:         string(transfer.Status),
		AttemptCount:   transfer.AttemptCount,
		IdempotencyKey: transfer.IdempotencyKey,
	}
}
