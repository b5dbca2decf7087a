package handler

import (
	"encoding/json"
	"net/http"

	"floramart-be/internal/address"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AddressHandler struct {
	addresses address.Service
}

func NewAddressHandler(addresses address.Service) *AddressHandler {
	return &AddressHandler{addresses: addresses}
}

type addressRequest struct {
	Recipient    string  `json:"recipient"`
	Phone        string  `json:"phone"`
	AddressLine1 string  `json:"address_line1"`
	AddressLine2 *string `json:"address_line2"`
	City         string  `json:"city"`
	Province     string  `json:"province"`
	PostalCode   string  `json:"postal_code"`
	Country      string  `json:"country"`
	SetAsDefault bool    `json:"set_as_default"`
}

func (h *AddressHandler) List(w http.ResponseWriter, r *http.Request) {
	addrs, err := h.addresses.List(r.Context())
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, addrs)
}

func (h *AddressHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Recipient == "" || req.AddressLine1 == "" {
		RespondAppError(w, ErrInvalidRequest)
		return
	}

	addr, err := h.addresses.Create(r.Context(), address.CreateAddressInput{
		Recipient:    req.Recipient,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		Province:     req.Province,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		SetAsDefault: req.SetAsDefault,
	})
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusCreated, addr)
}

func (h *AddressHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest)
		return
	}

	addr, err := h.addresses.Update(r.Context(), address.UpdateAddressInput{
		AddressID:    chi.URLParam(r, "id"),
		Recipient:    req.Recipient,
		Phone:        req.Phone,
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		Province:     req.Province,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		SetAsDefault: req.SetAsDefault,
	})
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, addr)
}

func (h *AddressHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondAppError(w, ErrInvalidRequest)
		return
	}

	if err := h.addresses.Delete(r.Context(), id); err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, nil)
}

func (h *AddressHandler) SetDefault(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondAppError(w, ErrInvalidRequest)
		return
	}

	if err := h.addresses.SetDefaultAddress(r.Context(), id); err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, nil)
}
