package handler

import (
	"net/http"

	"study_tracker/internal/api/middleware"
	"study_tracker/internal/app/service"
	"study_tracker/internal/common"
	"study_tracker/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type RoutineHandler struct {
	routineService *service.RoutineService
}

func NewRoutineHandler(routineService *service.RoutineService) *RoutineHandler {
	return &RoutineHandler{routineService: routineService}
}

func (h *RoutineHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.forDate)
	r.Post("/", h.toggle)
}

// queryDate reads an optional ?date=YYYY-MM-DD param, defaulting to today.
func queryDate(r *http.Request) (model.Date, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return model.Today(), nil
	}
	return model.ParseDate(raw)
}

func (h *RoutineHandler) forDate(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	date, err := queryDate(r)
	if err != nil {
		common.RespondWithDomainError(w, common.NewValidationError(map[string]string{
			"date": "date must use format YYYY-MM-DD",
		}))
		return
	}

	routine, err := h.routineService.ForDate(r.Context(), userID, date)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, routine)
}

func (h *RoutineHandler) toggle(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	var req service.RoutineToggleRequest
	if err := decodeJSON(r, &req); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	routine, err := h.routineService.Toggle(r.Context(), userID, req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, routine)
}
