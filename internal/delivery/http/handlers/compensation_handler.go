package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/charlesnunot/seller-settlement-service/internal/delivery/http/dto/request"
	"github.com/charlesnunot/seller-settlement-service/internal/delivery/http/dto/response"
	"github.com/charlesnunot/seller-settlement-service/internal/domain"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/metrics"
	"github.com/charlesnunot/seller-settlement-service/internal/usecase"
)

type CompensationHandler struct {
	compensationUC usecase.CompensationUsecase
	metrics        *metrics.SettlementMetrics
	detectLimit    int
}

func NewCompensationHandler(compensationUC usecase.CompensationUsecase, m *metrics.SettlementMetrics, detectLimit int) *CompensationHandler {
	return &CompensationHandler{compensationUC: compensationUC, metrics: m, detectLimit: detectLimit}
}

func (h *CompensationHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var req request.BatchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	limit := req.Limit
	if limit <= 0 {
		limit = h.detectLimit
	}
	detected, err := h.compensationUC.DetectNeeded(limit)
	if err != nil {
		h.metrics.SettlementErrorsTotal.WithLabelValues("detect_compensations").Inc()
		writeError(w, err)
		return
	}
	h.metrics.CompensationsDetectedTotal.Add(float64(len(detected)))
	ids := make([]string, 0, len(detected))
	for _, compensation := range detected {
		ids = append(ids, compensation.ID)
	}
	writeJSON(w, http.StatusOK, response.DetectCompensationsResponse{
		Detected: len(detected),
		IDs:      ids,
	})
}

func (h *CompensationHandler) Process(w http.ResponseWriter, r *http.Request) {
	compensationID := chi.URLParam(r, "compensationID")
	out, err := h.compensationUC.Process(compensationID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrInvalidStateTransition) {
			h.metrics.CompensationsFailedTotal.Inc()
		}
		h.metrics.SettlementErrorsTotal.WithLabelValues("process_compensation").Inc()
		writeError(w, err)
		return
	}
	if out.Status == string(domain.CompensationResolved) {
		h.metrics.CompensationsResolvedTotal.Inc()
	}
	writeJSON(w, http.StatusOK, response.ProcessCompensationResponse{
		Status: out.Status,
		DebtID: out.DebtID,
	})
}
