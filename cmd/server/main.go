package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study_tracker/internal/api"
	"study_tracker/internal/app/service"
	"study_tracker/internal/common/security"
	"study_tracker/internal/domain/repository"
	"study_tracker/internal/platform/config"
	"study_tracker/internal/platform/database"
)

func main() {
	// 1. Load Configuration
	config.Load()
	fmt.Println("Configuration loaded.")

	// 2. Initialize session tokens
	security.InitSessions()
	fmt.Println("Sessions initialized.")

	// 3. Initialize Database
	database.Connect()
	defer database.Close()
	fmt.Println("Database connected.")

	// 4. Migrations & seed data (routine templates, syllabus catalog)
	database.Migrate()
	database.Seed(context.Background())
	fmt.Println("Database migrated and seeded.")

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	taskRepo := repository.NewPgTaskRepository(database.DB)
	settingRepo := repository.NewPgSettingRepository(database.DB)
	sessionRepo := repository.NewPgStudySessionRepository(database.DB)
	routineRepo := repository.NewPgRoutineRepository(database.DB)
	dailyTaskRepo := repository.NewPgDailyTaskRepository(database.DB)
	mockTestRepo := repository.NewPgMockTestRepository(database.DB)
	syllabusRepo := repository.NewPgSyllabusRepository(database.DB)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo, settingRepo)
	taskService := service.NewTaskService(taskRepo)
	settingService := service.NewSettingService(settingRepo)
	studySessionService := service.NewStudySessionService(sessionRepo)
	routineService := service.NewRoutineService(routineRepo)
	plannerService := service.NewPlannerService(dailyTaskRepo)
	mockTestService := service.NewMockTestService(mockTestRepo)
	syllabusService := service.NewSyllabusService(syllabusRepo)
	analyticsService := service.NewAnalyticsService(
		taskRepo, dailyTaskRepo, sessionRepo, routineRepo, mockTestRepo, syllabusRepo, settingRepo,
	)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(
		authService,
		taskService,
		settingService,
		studySessionService,
		routineService,
		plannerService,
		mockTestService,
		syllabusService,
		analyticsService,
	)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", config.AppConfig.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", config.AppConfig.APIPort, err)
		}
	}()
	log.Println("Server started successfully.")

	<-stop // Wait for interrupt signal

	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
