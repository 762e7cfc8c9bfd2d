package handler

import (
	"net/http"

	"study_tracker/internal/api/middleware"
	"study_tracker/internal/app/service"
	"study_tracker/internal/common"

	"github.com/go-chi/chi/v5"
)

// BootstrapHandler serves the single payload the dashboard shell loads on
// first render, saving the frontend a fan-out of four requests.
type BootstrapHandler struct {
	authService     *service.AuthService
	taskService     *service.TaskService
	settingService  *service.SettingService
	syllabusService *service.SyllabusService
}

func NewBootstrapHandler(
	authService *service.AuthService,
	taskService *service.TaskService,
	settingService *service.SettingService,
	syllabusService *service.SyllabusService,
) *BootstrapHandler {
	return &BootstrapHandler{
		authService:     authService,
		taskService:     taskService,
		settingService:  settingService,
		syllabusService: syllabusService,
	}
}

func (h *BootstrapHandler) RegisterRoutes(r chi.Router) {
	r.Get("/bootstrap", h.bootstrap)
}

func (h *BootstrapHandler) bootstrap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := middleware.GetUserIDFromContext(ctx)

	user, err := h.authService.GetUser(ctx, userID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	tasks, err := h.taskService.List(ctx, userID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	settings, err := h.settingService.Get(ctx, userID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}
	syllabus, err := h.syllabusService.Overview(ctx, userID)
	if err != nil {
		common.RespondWithDomainError(w, err)
		return
	}

	common.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"user":     user,
		"tasks":    tasks,
		"settings": settings,
		"syllabus": syllabus,
	})
}
