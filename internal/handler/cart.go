package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"floramart-be/internal/auth"
	"floramart-be/internal/cart"

	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	carts cart.Service
}

func NewCartHandler(carts cart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	items, err := h.carts.GetCart(r.Context(), userID)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, items)
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	var req struct {
		FlowerID uint `json:"flower_id"`
		Quantity int  `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest)
		return
	}

	item, err := h.carts.AddToCart(r.Context(), cart.AddToCartParams{
		UserID:   userID,
		FlowerID: req.FlowerID,
		Quantity: req.Quantity,
	})
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusCreated, item)
}

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	flowerID, err := strconv.ParseUint(chi.URLParam(r, "flowerID"), 10, 64)
	if err != nil {
		RespondAppError(w, ErrInvalidRequest)
		return
	}

	if err := h.carts.RemoveFromCart(r.Context(), userID, uint(flowerID)); err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, nil)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UserIDFromContext(r.Context())

	if err := h.carts.ClearCart(r.Context(), userID); err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, nil)
}
