package handler

import (
	"net/http"

	"study_tracker/internal/api/middleware"
	"study_tracker/internal/app/service"
	"study_tracker/internal/common"

	"github.com/go-chi/chi/v5"
)

type StudySessionHandler struct {
	sessionService *service.StudySessionService
}

func NewStudySessionHandler(sessionService *service.StudySessionService) *StudySessionHandler {
	return &StudySessionHandler{sessionService: sessionService}
}

func (h *StudySessionHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.totals)
	r.Post("/", h.log)
}

func (h *StudySessionHandler) log(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	var req service.StudySessionRequest
	if err := decodeJSON(r, &req); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	totals, err := h.sessionService.Log(r.Context(), userID, req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, totals)
}

func (h *StudySessionHandler) totals(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	totals, err := h.sessionService.Totals(r.Context(), userID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, totals)
}
