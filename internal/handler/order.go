package handler

import (
	"net/http"
	"strconv"

	"floramart-be/internal/auth"
	"floramart-be/internal/logger"
	"floramart-be/internal/order"
	"floramart-be/internal/payment"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orders   order.Service
	payments payment.Repository
}

func NewOrderHandler(orders order.Service, payments payment.Repository) *OrderHandler {
	return &OrderHandler{orders: orders, payments: payments}
}

// Checkout freezes the cart into a PENDING order awaiting payment and opens
// a matching payment row for the gateway to settle.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	o, err := h.orders.Checkout(r.Context(), userID)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	if err := h.payments.SavePayment(r.Context(), &payment.Payment{
		OrderID:   o.ID,
		Reference: o.Reference,
		Amount:    o.Amount,
		Status:    string(order.PaymentPending),
	}); err != nil {
		logger.FromCtx(r.Context()).Error("failed to open payment row",
			zap.String("reference", o.Reference),
			zap.Error(err),
		)
		RespondAppError(w, ErrInternalError)
		return
	}

	RespondSuccess(w, http.StatusCreated, map[string]any{
		"order_id":       o.ID,
		"reference":      o.Reference,
		"amount":         o.Amount,
		"payment_status": o.PaymentStatus,
	})
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	limit := int32(20)
	page := int32(1)
	if l := queryInt32(r, "limit"); l != nil {
		limit = *l
	}
	if p := queryInt32(r, "page"); p != nil {
		page = *p
	}

	orders, err := h.orders.GetOrders(r.Context(), userID, limit, page)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())
	role, _ := auth.UserRoleFromContext(r.Context())

	orderID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		RespondAppError(w, ErrInvalidRequest)
		return
	}

	o, err := h.orders.GetOrderDetail(r.Context(), userID, uint(orderID), role == "ADMIN")
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	resp := map[string]any{"order": o}
	if p, err := h.payments.GetPaymentByOrder(r.Context(), o.ID); err == nil {
		resp["payment"] = p
	}
	RespondSuccess(w, http.StatusOK, resp)
}
