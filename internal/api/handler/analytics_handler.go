package handler

import (
	"net/http"

	"study_tracker/internal/api/middleware"
	"study_tracker/internal/app/service"
	"study_tracker/internal/common"

	"github.com/go-chi/chi/v5"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/summary", h.summary)
}

// RegisterProgressRoute mounts the task-progress endpoint kept for the
// dashboard's legacy progress widget.
func (h *AnalyticsHandler) RegisterProgressRoute(r chi.Router) {
	r.Get("/progress", h.progress)
}

func (h *AnalyticsHandler) summary(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	summary, err := h.analyticsService.Summary(r.Context(), userID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, summary)
}

func (h *AnalyticsHandler) progress(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	progress, err := h.analyticsService.TaskProgress(r.Context(), userID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, progress)
}
