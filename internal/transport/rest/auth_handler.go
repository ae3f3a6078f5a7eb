package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"procwatch/internal/domain"
	"procwatch/internal/logger"
)

type AuthHandler struct {
	svc domain.AuthService
	log logger.Logger
}

func NewAuthHandler(svc domain.AuthService, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		svc: svc,
		log: log,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req domain.LoginRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if validationErrors := ValidateStruct(req); len(validationErrors) > 0 {
		JSONValidationError(w, validationErrors)
		return
	}

	res, err := h.svc.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAuthDisabled):
			JSONError(w, http.StatusNotFound, "Authentication is disabled")
		case errors.Is(err, domain.ErrInvalidCredentials):
			h.log.Warn("failed login", "username", req.Username, "remote_addr", r.RemoteAddr)
			JSONError(w, http.StatusUnauthorized, "Invalid credentials")
		default:
			h.log.Error("login failed", "error", err)
			JSONError(w, http.StatusInternalServerError, "Something went wrong")
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    res.AccessToken,
		Path:     "/",
		Expires:  res.ExpiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	JSONSuccess(w, http.StatusOK, APIResponse{
		Message: "OK",
		Data:    res,
	})
}
