package api

import (
	"net/http"
	"time"

	"study_tracker/internal/api/handler"
	"study_tracker/internal/api/middleware"
	"study_tracker/internal/app/service"
	"study_tracker/internal/common/security"
	"study_tracker/internal/web"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	authService *service.AuthService,
	taskService *service.TaskService,
	settingService *service.SettingService,
	studySessionService *service.StudySessionService,
	routineService *service.RoutineService,
	plannerService *service.PlannerService,
	mockTestService *service.MockTestService,
	syllabusService *service.SyllabusService,
	analyticsService *service.AnalyticsService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Decodes the session cookie and puts claims in context; never rejects
	// on its own. middleware.Authenticator does the actual gating.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(apiRouter chi.Router) {
		// Auth routes handle their own gating (admin-only register lives
		// inside the handler's route group).
		authHandler := handler.NewAuthHandler(authService)
		apiRouter.Group(func(publicAuth chi.Router) {
			authHandler.RegisterRoutes(publicAuth)
		})

		// Everything below needs a logged-in user.
		apiRouter.Group(func(authed chi.Router) {
			authed.Use(middleware.Authenticator)

			bootstrapHandler := handler.NewBootstrapHandler(authService, taskService, settingService, syllabusService)
			bootstrapHandler.RegisterRoutes(authed)

			taskHandler := handler.NewTaskHandler(taskService)
			authed.Route("/tasks", taskHandler.RegisterRoutes)

			settingHandler := handler.NewSettingHandler(settingService)
			authed.Route("/settings", settingHandler.RegisterRoutes)

			studySessionHandler := handler.NewStudySessionHandler(studySessionService)
			authed.Route("/study-session", studySessionHandler.RegisterRoutes)

			routineHandler := handler.NewRoutineHandler(routineService)
			authed.Route("/daily-routine", routineHandler.RegisterRoutes)

			plannerHandler := handler.NewPlannerHandler(plannerService)
			authed.Route("/daily-planner", plannerHandler.RegisterRoutes)

			mockTestHandler := handler.NewMockTestHandler(mockTestService)
			authed.Route("/mock-tests", mockTestHandler.RegisterRoutes)

			syllabusHandler := handler.NewSyllabusHandler(syllabusService)
			authed.Route("/syllabus-progress", syllabusHandler.RegisterRoutes)

			analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
			authed.Route("/analytics", analyticsHandler.RegisterRoutes)
			analyticsHandler.RegisterProgressRoute(authed)
		})
	})

	// Server-rendered pages and static assets.
	webHandler := web.NewHandler(authService, settingService, analyticsService, syllabusService)
	webHandler.RegisterRoutes(r)

	return r
}
