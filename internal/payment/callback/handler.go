package callback

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"floramart-be/internal/logger"
	"floramart-be/internal/payment/vnpay"

	"go.uber.org/zap"
)

const processTimeout = 10 * time.Second

// Handler terminates the gateway's return redirect.
type Handler struct {
	processor *Processor
}

func NewHandler(processor *Processor) *Handler {
	return &Handler{processor: processor}
}

// HandleReturn is mounted at GET /payment/vnpay/return. Every outcome the
// processor can classify is acknowledged with 200 so the gateway stops
// retrying; only internal failures answer 500.
func (h *Handler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), processTimeout)
	defer cancel()

	params := vnpay.FromQuery(r.URL.Query())
	receipt := h.processor.Process(ctx, params)

	switch receipt.Result {
	case ResultPaid:
		writeJSON(ctx, w, http.StatusOK, map[string]any{
			"status":    "success",
			"reference": receipt.Reference,
			"amount":    receipt.Amount,
			"pay_date":  receipt.PayDate,
		})

	case ResultFailed:
		writeJSON(ctx, w, http.StatusOK, map[string]any{
			"status":        "failed",
			"reference":     receipt.Reference,
			"response_code": receipt.ResponseCode,
			"description":   receipt.Description,
		})

	case ResultRejected:
		// No detail: don't tell a forger which check tripped.
		writeJSON(ctx, w, http.StatusOK, map[string]any{
			"status": "rejected",
		})

	default:
		writeJSON(ctx, w, http.StatusInternalServerError, map[string]any{
			"status": "error",
		})
	}
}

// writeJSON emits a flat body instead of the handler package's APIResponse
// envelope: this endpoint answers the gateway redirect, not API clients, so
// the shape is part of the gateway-facing contract. It also cannot reuse
// handler.RespondJSON without an import cycle (handler mounts this package).
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.FromCtx(ctx).Error("failed to write callback response", zap.Error(err))
	}
}
