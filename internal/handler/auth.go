package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/proposalcraft/proposalcraft-go/internal/middleware"
	"github.com/proposalcraft/proposalcraft-go/internal/model"
	"github.com/proposalcraft/proposalcraft-go/internal/service"
	"github.com/proposalcraft/proposalcraft-go/internal/session"
)

// AuthHandler handles HTTP requests for the session cookie.
type AuthHandler struct {
	service *service.AuthService
	cookies session.Cookies
	signer  *session.Signer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, cookies session.Cookies, signer *session.Signer) *AuthHandler {
	return &AuthHandler{service: svc, cookies: cookies, signer: signer}
}

// HandleMe handles GET /api/v1/auth/me requests. Anonymous callers get null.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.IdentityFromContext(r.Context())
	writeJSON(w, http.StatusOK, id)
}

// HandleLogout handles POST /api/v1/auth/logout requests.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w, r)
	writeJSON(w, http.StatusOK, model.LogoutResponse{Success: true})
}

// HandleLogin handles POST /api/v1/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	token, id, err := h.service.Login(req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired), errors.Is(err, service.ErrPasswordRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
		case errors.Is(err, service.ErrLoginDisabled):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			slog.Error("login failed", "request_id", middleware.RequestID(r.Context()), "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	h.cookies.Set(w, r, token, h.signer)
	writeJSON(w, http.StatusOK, id)
}
