package handler

import (
	"errors"
	"net/http"

	"study_tracker/internal/api/middleware"
	"study_tracker/internal/app/service"
	"study_tracker/internal/common"

	"github.com/go-chi/chi/v5"
)

type SyllabusHandler struct {
	syllabusService *service.SyllabusService
}

func NewSyllabusHandler(syllabusService *service.SyllabusService) *SyllabusHandler {
	return &SyllabusHandler{syllabusService: syllabusService}
}

func (h *SyllabusHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.overview)
	r.Post("/", h.setMilestone)
}

func (h *SyllabusHandler) overview(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	overview, err := h.syllabusService.Overview(r.Context(), userID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, overview)
}

func (h *SyllabusHandler) setMilestone(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())

	var req service.MilestoneUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	overview, err := h.syllabusService.SetMilestone(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.RespondWithError(w, http.StatusNotFound, "Topic not found")
			return
		}
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, overview)
}
