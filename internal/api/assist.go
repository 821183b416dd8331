package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/assist"
	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/store"
)

// AssistHandler exposes the AI assist features. Each request is single-shot
// with a defensive timeout; a failed call is terminal for that request.
type AssistHandler struct {
	DB      *sql.DB
	Client  assist.Client
	Timeout time.Duration
}

type analyzeRequest struct {
	Input string `json:"input"`
}

type analyzeResponse struct {
	assist.ItemAnalysis
	ExpirationDate string `json:"expirationDate,omitempty"`
}

type planRequest struct {
	Mode assist.PlanMode `json:"mode"`
}

func (h *AssistHandler) timeoutCtx(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

// Analyze handles POST /api/assist/analyze: free text in, structured item
// draft out. Shelf-life estimates under ten years become an expiration date.
func (h *AssistHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if h.Client == nil {
		jsonError(w, http.StatusServiceUnavailable, "assist not configured")
		return
	}

	var req analyzeRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Input == "" {
		jsonError(w, http.StatusBadRequest, "input required")
		return
	}

	ctx, cancel := h.timeoutCtx(r)
	defer cancel()

	analysis, err := h.Client.AnalyzeItemInput(ctx, req.Input)
	if err != nil {
		slog.Error("item analysis failed", "error", err)
		jsonError(w, http.StatusBadGateway, "analysis failed, please try again")
		return
	}

	jsonResponse(w, http.StatusOK, analyzeResponse{
		ItemAnalysis:   *analysis,
		ExpirationDate: assist.ExpirationFromShelfLife(analysis.EstimatedShelfLifeDays, time.Now()),
	})
}

// Plan handles POST /api/assist/plan: generates a recipe or audit plan from
// the items currently in stock. The response content is opaque display text.
func (h *AssistHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if h.Client == nil {
		jsonError(w, http.StatusServiceUnavailable, "assist not configured")
		return
	}

	var req planRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !req.Mode.Valid() {
		jsonError(w, http.StatusBadRequest, "mode must be \"recipe\" or \"audit\"")
		return
	}

	items, err := store.ListItems(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "failed to list items")
		return
	}

	ctx, cancel := h.timeoutCtx(r)
	defer cancel()

	content, err := h.Client.GenerateUtilizationPlan(ctx, items, req.Mode)
	if err != nil {
		slog.Error("utilization plan failed", "mode", req.Mode, "error", err)
		jsonError(w, http.StatusBadGateway, "plan generation failed, please try again")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"content": content})
}
