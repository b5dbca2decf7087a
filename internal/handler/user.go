package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"floramart-be/internal/auth"
	"floramart-be/internal/user"
)

type UserHandler struct {
	users user.Service
}

func NewUserHandler(users user.Service) *UserHandler {
	return &UserHandler{users: users}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

func (req *credentialsRequest) validate() bool {
	req.Email = strings.TrimSpace(req.Email)
	return req.Email != "" && strings.Contains(req.Email, "@") && len(req.Password) >= 8
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.validate() {
		RespondAppError(w, ErrInvalidRequest)
		return
	}

	token, u, err := h.users.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusCreated, newAuthResponse(token, u))
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		RespondAppError(w, ErrInvalidRequest)
		return
	}

	token, u, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	RespondSuccess(w, http.StatusOK, newAuthResponse(token, u))
}

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	email, ok := auth.UserEmailFromContext(r.Context())
	if !ok {
		RespondAppError(w, ErrUnauthorized)
		return
	}

	u, err := h.users.GetUserByEmail(r.Context(), email)
	if err != nil {
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, map[string]any{
		"id":    u.ID,
		"email": u.Email,
		"role":  u.Role,
	})
}

func newAuthResponse(token string, u user.User) authResponse {
	var resp authResponse
	resp.Token = token
	resp.User.ID = u.ID
	resp.User.Email = u.Email
	resp.User.Role = string(u.Role)
	return resp
}
