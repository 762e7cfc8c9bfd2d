package handler

import (
	"net/http"

	"study_tracker/internal/api/middleware"
	"study_tracker/internal/app/service"
	"study_tracker/internal/common"
	"study_tracker/internal/common/security"

	"github.com/go-chi/chi/v5"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
	r.Get("/me", h.me)

	r.Post("/admin/login", h.adminLogin)
	r.Post("/admin/logout", h.adminLogout)
	r.Get("/admin/session", h.adminSession)

	r.Group(func(admin chi.Router) {
		admin.Use(middleware.AdminOnly)
		admin.Post("/register", h.register)
	})
}

// register creates an account on behalf of an admin. It does not log the
// new user in; the admin keeps their own session.
func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{"user": user})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	user, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	_, isAdmin := middleware.SessionClaims(r)
	token, err := security.NewSessionToken(user.ID, isAdmin)
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	security.SetSessionCookie(w, token)
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

// logout drops the user identity but keeps an admin flag alive, mirroring
// the two independent session roles.
func (h *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	_, isAdmin := middleware.SessionClaims(r)
	if isAdmin {
		token, err := security.NewSessionToken("", true)
		if err != nil {
			common.RespondWithError(w, http.StatusInternalServerError, "Failed to update session")
			return
		}
		security.SetSessionCookie(w, token)
	} else {
		security.ClearSessionCookie(w)
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.SessionClaims(r)
	if userID == "" {
		common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
		return
	}
	user, err := h.authService.GetUser(r.Context(), userID)
	if err != nil {
		common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"user": nil})
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (h *AuthHandler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req service.CredentialsRequest
	if err := decodeJSON(r, &req); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	if err := h.authService.AdminLogin(req); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	userID, _ := middleware.SessionClaims(r)
	token, err := security.NewSessionToken(userID, true)
	if err != nil {
		common.RespondWithError(w, http.StatusInternalServerError, "Failed to create session")
		return
	}
	security.SetSessionCookie(w, token)
	common.RespondWithJSON(w, http.StatusOK, map[string]bool{"is_admin": true})
}

func (h *AuthHandler) adminLogout(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.SessionClaims(r)
	if userID != "" {
		token, err := security.NewSessionToken(userID, false)
		if err != nil {
			common.RespondWithError(w, http.StatusInternalServerError, "Failed to update session")
			return
		}
		security.SetSessionCookie(w, token)
	} else {
		security.ClearSessionCookie(w)
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AuthHandler) adminSession(w http.ResponseWriter, r *http.Request) {
	_, isAdmin := middleware.SessionClaims(r)
	common.RespondWithJSON(w, http.StatusOK, map[string]bool{"is_admin": isAdmin})
}
