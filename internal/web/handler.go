// Package web serves the server-rendered pages. Templates and static assets
// are embedded so the binary ships self-contained.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"study_tracker/internal/api/middleware"
	"study_tracker/internal/app/service"
	"study_tracker/internal/common/security"
	"study_tracker/internal/domain/model"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

func page(name string) *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name))
}

func authPage(name string) *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/auth_layout.html", "templates/"+name))
}

var (
	loginPage           = authPage("login.html")
	adminLoginPage      = authPage("admin_login.html")
	adminCreateUserPage = authPage("admin_create_user.html")

	tabPages = map[string]*template.Template{
		"dashboard":       page("dashboard.html"),
		"plan":            page("plan.html"),
		"routine":         page("routine.html"),
		"session":         page("session.html"),
		"tests":           page("tests.html"),
		"downloads":       page("downloads.html"),
		"analytics":       page("analytics.html"),
		"resources":       page("resources.html"),
		"settings":        page("settings.html"),
		"syllabus":        page("syllabus.html"),
		"score-predictor": page("score_predictor.html"),
	}

	tabTitles = map[string]string{
		"dashboard":       "Dashboard",
		"plan":            "Daily Planner",
		"routine":         "Daily Routine",
		"session":         "Study Session",
		"tests":           "Mock Tests",
		"downloads":       "Downloads",
		"analytics":       "Analytics",
		"resources":       "Resources",
		"settings":        "Settings",
		"syllabus":        "Syllabus",
		"score-predictor": "Score Predictor",
	}
)

type pageData struct {
	Title     string
	Active    string
	Theme     string
	DailyGoal int
	Error     string
	Notice    string

	Summary  *service.Summary
	Syllabus *service.SyllabusOverview
	Settings *model.Setting
}

type Handler struct {
	authService      *service.AuthService
	settingService   *service.SettingService
	analyticsService *service.AnalyticsService
	syllabusService  *service.SyllabusService
}

func NewHandler(
	authService *service.AuthService,
	settingService *service.SettingService,
	analyticsService *service.AnalyticsService,
	syllabusService *service.SyllabusService,
) *Handler {
	return &Handler{
		authService:      authService,
		settingService:   settingService,
		analyticsService: analyticsService,
		syllabusService:  syllabusService,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	staticRoot, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))))

	r.Get("/", h.root)
	r.Get("/login", h.loginForm)
	r.Post("/login", h.loginSubmit)
	r.Post("/logout", h.logout)

	r.Get("/admin", h.adminLoginForm)
	r.Post("/admin", h.adminLoginSubmit)
	r.Get("/admin/create-user", h.adminCreateUserForm)
	r.Post("/admin/create-user", h.adminCreateUserSubmit)

	r.Group(func(pages chi.Router) {
		pages.Use(middleware.RequireLoginPage)
		for tab := range tabPages {
			pages.Get("/"+tab, h.tab(tab))
		}
	})
}

func render(w http.ResponseWriter, tpl *template.Template, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		log.Printf("web: render %s: %v", data.Title, err)
	}
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if userID, _ := middleware.SessionClaims(r); userID != "" {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	render(w, loginPage, pageData{Title: "Login"})
}

func (h *Handler) loginSubmit(w http.ResponseWriter, r *http.Request) {
	req := service.CredentialsRequest{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
	user, err := h.authService.Login(r.Context(), req)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		render(w, loginPage, pageData{Title: "Login", Error: "Invalid username or password"})
		return
	}

	_, isAdmin := middleware.SessionClaims(r)
	token, err := security.NewSessionToken(user.ID, isAdmin)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		render(w, loginPage, pageData{Title: "Login", Error: "Could not start a session"})
		return
	}
	security.SetSessionCookie(w, token)
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if _, isAdmin := middleware.SessionClaims(r); isAdmin {
		if token, err := security.NewSessionToken("", true); err == nil {
			security.SetSessionCookie(w, token)
		} else {
			security.ClearSessionCookie(w)
		}
	} else {
		security.ClearSessionCookie(w)
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) adminLoginForm(w http.ResponseWriter, r *http.Request) {
	render(w, adminLoginPage, pageData{Title: "Admin Login"})
}

func (h *Handler) adminLoginSubmit(w http.ResponseWriter, r *http.Request) {
	req := service.CredentialsRequest{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
	if err := h.authService.AdminLogin(req); err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		render(w, adminLoginPage, pageData{Title: "Admin Login", Error: "Invalid admin credentials"})
		return
	}

	userID, _ := middleware.SessionClaims(r)
	token, err := security.NewSessionToken(userID, true)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		render(w, adminLoginPage, pageData{Title: "Admin Login", Error: "Could not start a session"})
		return
	}
	security.SetSessionCookie(w, token)
	http.Redirect(w, r, "/admin/create-user", http.StatusFound)
}

func (h *Handler) adminCreateUserForm(w http.ResponseWriter, r *http.Request) {
	if _, isAdmin := middleware.SessionClaims(r); !isAdmin {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}
	render(w, adminCreateUserPage, pageData{Title: "Create User"})
}

func (h *Handler) adminCreateUserSubmit(w http.ResponseWriter, r *http.Request) {
	if _, isAdmin := middleware.SessionClaims(r); !isAdmin {
		http.Redirect(w, r, "/admin", http.StatusFound)
		return
	}

	req := service.CredentialsRequest{
		Username: r.FormValue("username"),
		Password: r.FormValue("password"),
	}
	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		render(w, adminCreateUserPage, pageData{Title: "Create User", Error: "Could not create the account"})
		return
	}
	render(w, adminCreateUserPage, pageData{
		Title:  "Create User",
		Notice: "Account created for " + user.Username,
	})
}

// tab renders one dashboard tab. Only the tabs that show server-side numbers
// load data here; the rest hydrate from the JSON API.
func (h *Handler) tab(name string) http.HandlerFunc {
	tpl := tabPages[name]
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID, _ := middleware.GetUserIDFromContext(ctx)

		data := pageData{
			Title:     tabTitles[name],
			Active:    name,
			Theme:     model.DefaultTheme,
			DailyGoal: model.DefaultDailyGoal,
		}
		if settings, err := h.settingService.Get(ctx, userID); err == nil {
			data.Theme = settings.Theme
			data.DailyGoal = settings.DailyGoal
			data.Settings = settings
		} else {
			log.Printf("web: load settings: %v", err)
			data.Settings = &model.Setting{DailyGoal: model.DefaultDailyGoal, Theme: model.DefaultTheme}
		}

		switch name {
		case "dashboard", "analytics", "score-predictor":
			summary, err := h.analyticsService.Summary(ctx, userID)
			if err != nil {
				http.Error(w, "Something went wrong", http.StatusInternalServerError)
				return
			}
			data.Summary = summary
		}
		switch name {
		case "syllabus", "score-predictor":
			overview, err := h.syllabusService.Overview(ctx, userID)
			if err != nil {
				http.Error(w, "Something went wrong", http.StatusInternalServerError)
				return
			}
			data.Syllabus = overview
		}

		render(w, tpl, data)
	}
}
