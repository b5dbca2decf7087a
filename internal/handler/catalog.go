package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"floramart-be/internal/auth"
	"floramart-be/internal/category"
	"floramart-be/internal/flower"
	"floramart-be/internal/seller"
	"floramart-be/internal/user"

	"github.com/go-chi/chi/v5"
)

// CatalogHandler serves the public browse surface: categories, flowers and
// seller listings.
type CatalogHandler struct {
	categories category.Service
	flowers    flower.Service
	sellers    seller.Service
	users      user.Service
}

func NewCatalogHandler(categories category.Service, flowers flower.Service, sellers seller.Service, users user.Service) *CatalogHandler {
	return &CatalogHandler{
		categories: categories,
		flowers:    flowers,
		sellers:    sellers,
		users:      users,
	}
}

func queryString(r *http.Request, name string) *string {
	if v := r.URL.Query().Get(name); v != "" {
		return &v
	}
	return nil
}

func queryInt32(r *http.Request, name string) *int32 {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		return nil
	}
	n32 := int32(n)
	return &n32
}

func queryUint(r *http.Request, name string) *uint {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(n)
	return &u
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.GetCategories(r.Context(),
		queryString(r, "filter"), queryInt32(r, "limit"), queryInt32(r, "page"))
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, categories)
}

func (h *CatalogHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	if role, _ := auth.UserRoleFromContext(r.Context()); role != "ADMIN" {
		RespondAppError(w, ErrForbidden)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		RespondAppError(w, ErrInvalidRequest)
		return
	}

	c, err := h.categories.AddCategory(r.Context(), req.Name)
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusCreated, c)
}

func (h *CatalogHandler) ListFlowers(w http.ResponseWriter, r *http.Request) {
	flowers, err := h.flowers.GetFlowers(r.Context(), flower.ListOptions{
		Filter:     queryString(r, "filter"),
		CategoryID: queryUint(r, "category_id"),
		SellerID:   queryUint(r, "seller_id"),
		Limit:      queryInt32(r, "limit"),
		Page:       queryInt32(r, "page"),
	})
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, flowers)
}

func (h *CatalogHandler) GetFlower(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		RespondAppError(w, ErrInvalidRequest)
		return
	}

	f, err := h.flowers.GetFlower(r.Context(), uint(id))
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, f)
}

func (h *CatalogHandler) AddFlower(w http.ResponseWriter, r *http.Request) {
	role, _ := auth.UserRoleFromContext(r.Context())
	userID, _ := auth.UserIDFromContext(r.Context())

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Price       int64  `json:"price"`
		Stock       int    `json:"stock"`
		ImageURL    string `json:"image_url"`
		CategoryID  uint   `json:"category_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest)
		return
	}

	s, err := h.sellers.GetByUserID(r.Context(), userID)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	f, err := h.flowers.CreateFlower(r.Context(), role, flower.NewFlowerInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		CategoryID:  req.CategoryID,
		SellerID:    s.ID,
	})
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusCreated, f)
}

func (h *CatalogHandler) ListSellers(w http.ResponseWriter, r *http.Request) {
	sellers, err := h.sellers.GetSellers(r.Context(), queryInt32(r, "limit"), queryInt32(r, "page"))
	if err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusOK, sellers)
}

// RegisterSeller turns the authenticated user into a seller.
func (h *CatalogHandler) RegisterSeller(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		RespondAppError(w, ErrUnauthorized)
		return
	}

	var req struct {
		StoreName string `json:"store_name"`
		Phone     string `json:"phone"`
		Address   string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.StoreName == "" {
		RespondAppError(w, ErrInvalidRequest)
		return
	}

	s, err := h.sellers.RegisterSeller(r.Context(), seller.NewSellerInput{
		UserID:    userID,
		StoreName: req.StoreName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	if err := h.users.PromoteToSeller(r.Context(), userID); err != nil {
		RespondDomainError(w, err)
		return
	}
	RespondSuccess(w, http.StatusCreated, s)
}
