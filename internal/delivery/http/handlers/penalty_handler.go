package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/charlesnunot/seller-settlement-service/internal/delivery/http/dto/request"
	"github.com/charlesnunot/seller-settlement-service/internal/delivery/http/dto/response"
	"github.com/charlesnunot/seller-settlement-service/internal/infrastructure/metrics"
	"github.com/charlesnunot/seller-settlement-service/internal/usecase"
)

type PenaltyHandler struct {
	penaltyUC usecase.PenaltyUsecase
	metrics   *metrics.SettlementMetrics
}

func NewPenaltyHandler(penaltyUC usecase.PenaltyUsecase, m *metrics.SettlementMetrics) *PenaltyHandler {
	return &PenaltyHandler{penaltyUC: penaltyUC, metrics: m}
}

func (h *PenaltyHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	out, err := h.penaltyUC.ApplyPenaltiesForOverdue(time.Now())
	if err != nil {
		h.metrics.SettlementErrorsTotal.WithLabelValues("penalty_sweep").Inc()
		writeError(w, err)
		return
	}
	h.metrics.PenaltiesAppliedTotal.Add(float64(out.Applied))
	writeJSON(w, http.StatusOK, response.SweepResponse{
		Applied: out.Applied,
		Skipped: out.Skipped,
		Failed:  out.Failed,
	})
}

func (h *PenaltyHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req request.ResolvePenaltyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	out, err := h.penaltyUC.ResolvePenalty(req.SellerID, req.ObligationID)
	if err != nil {
		h.metrics.SettlementErrorsTotal.WithLabelValues("resolve_penalty").Inc()
		writeError(w, err)
		return
	}
	h.metrics.PenaltiesResolvedTotal.Add(float64(out.Resolved))
	writeJSON(w, http.StatusOK, response.ResolvePenaltyResponse{Resolved: out.Resolved})
}

func (h *PenaltyHandler) ListActiveBySeller(w http.ResponseWriter, r *http.Request) {
	sellerID := chi.URLParam(r, "sellerID")
	penalties, err := h.penaltyUC.GetActiveBySeller(sellerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, penalties)
}
