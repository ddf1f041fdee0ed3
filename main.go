package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartmeet/config"
	"smartmeet/cron"
	"smartmeet/database"
	availabilityRepoPkg "smartmeet/database/repository/availability"
	directoryRepoPkg "smartmeet/database/repository/directory"
	meetingRepoPkg "smartmeet/database/repository/meeting"
	"smartmeet/handlers"
	"smartmeet/middleware"
	"smartmeet/routes"
	"smartmeet/services/assistant"
	"smartmeet/services/notification"
	"smartmeet/services/parser"
	"smartmeet/services/resolver"
	"smartmeet/services/scheduler"
	"smartmeet/services/tasks"
	"smartmeet/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	// Backends: mongo for real deployments, memory for demo mode with the
	// fixture directory and seeded calendars.
	var (
		directoryRepo    directoryRepoPkg.Repository
		availabilityRepo availabilityRepoPkg.Repository
		meetingRepo      meetingRepoPkg.Repository
	)
	switch config.AppConfig.DataBackend {
	case "memory":
		fixture := directoryRepoPkg.CompanyDirectoryFixture()
		memDirectory := directoryRepoPkg.NewMemoryDirectoryRepo(fixture)
		memAvailability := availabilityRepoPkg.NewMemoryAvailabilityRepo()
		emails := make([]string, 0, len(fixture))
		for _, p := range fixture {
			emails = append(emails, p.Email)
		}
		availabilityRepoPkg.SeedDemoCalendars(memAvailability, emails, time.Now())

		directoryRepo = memDirectory
		availabilityRepo = memAvailability
		meetingRepo = meetingRepoPkg.NewMemoryMeetingRepo()
		logger.Sugar().Info("main: running with in-memory demo backend")
	default:
		database.InitDB()
		directoryRepo = directoryRepoPkg.NewMongoDirectoryRepo()
		availabilityRepo = availabilityRepoPkg.NewMongoAvailabilityRepo()
		meetingRepo = meetingRepoPkg.NewMongoMeetingRepo()
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	requestParser := parser.New()
	entityResolver := resolver.NewResolver(directoryRepo)
	engine := scheduler.NewEngine(availabilityRepo, scheduler.ConfigFromApp())
	notificationService := notification.NewDefaultNotificationService()
	reminderScheduler := tasks.NewAsynqReminderScheduler()

	assistantService := assistant.NewDefaultAssistantService(
		requestParser,
		entityResolver,
		engine,
		meetingRepo,
		notificationService,
		reminderScheduler,
	)

	assistantHandler := handlers.NewAssistantHandler(assistantService, logger)
	directoryHandler := handlers.NewDirectoryHandler(directoryRepo)
	meetingHandler := handlers.NewMeetingHandler(meetingRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ProcessMessage:         assistantHandler.ProcessMessage,
		ConfirmParticipant:     assistantHandler.ConfirmParticipant,
		AddExternalParticipant: assistantHandler.AddExternalParticipant,
		SelectSlot:             assistantHandler.SelectSlot,
		ScheduleMeeting:        assistantHandler.ScheduleMeeting,
		RequestTimeChange:      assistantHandler.RequestTimeChange,
		CancelSession:          assistantHandler.CancelSession,

		ListParticipants:   directoryHandler.ListParticipants,
		SearchParticipants: directoryHandler.SearchParticipants,

		GetMeetingByID: meetingHandler.GetMeetingByID,
		ListMeetings:   meetingHandler.ListMeetings,

		IssueToken: handlers.IssueToken,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker and health monitor.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor([]*redis.Client{utils.GetSessionCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
