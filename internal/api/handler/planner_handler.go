package handler

import (
	"errors"
	"net/http"

	"study_tracker/internal/api/middleware"
	"study_tracker/internal/app/service"
	"study_tracker/internal/common"
	"study_tracker/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

type PlannerHandler struct {
	plannerService *service.PlannerService
}

func NewPlannerHandler(plannerService *service.PlannerService) *PlannerHandler {
	return &PlannerHandler{plannerService: plannerService}
}

func (h *PlannerHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Patch("/{taskID}", h.update)
	r.Delete("/{taskID}", h.delete)
}

func (h *PlannerHandler) list(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	date, err := queryDate(r)
	if err != nil {
		common.RespondWithDomainError(w, common.NewValidationError(map[string]string{
			"date": "date must use format YYYY-MM-DD",
		}))
		return
	}

	tasks, err := h.plannerService.ListForDate(r.Context(), userID, date)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string][]model.DailyTask{"tasks": tasks})
}

func (h *PlannerHandler) create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	var req service.DailyTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	task, err := h.plannerService.Create(r.Context(), userID, req)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, task)
}

func (h *PlannerHandler) update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	taskID := chi.URLParam(r, "taskID")

	var req service.DailyTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	task, err := h.plannerService.Update(r.Context(), userID, taskID, req)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.RespondWithError(w, http.StatusNotFound, "Task not found")
			return
		}
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, task)
}

func (h *PlannerHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserIDFromContext(r.Context())
	taskID := chi.URLParam(r, "taskID")

	if err := h.plannerService.Delete(r.Context(), userID, taskID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			common.RespondWithError(w, http.StatusNotFound, "Task not found")
			return
		}
		common.RespondWithDomainError(w, err)
		return
	}
	common.RespondWithJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
