// File: carelink/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carelink/config"
	"carelink/cron"
	"carelink/database"
	bookingRepoPkg "carelink/database/repository/booking"
	patientRepoPkg "carelink/database/repository/patient"
	providerRepoPkg "carelink/database/repository/provider"
	reminderRepoPkg "carelink/database/repository/reminder"
	"carelink/handlers"
	"carelink/middleware"
	"carelink/routes"
	"carelink/services/booking"
	"carelink/services/chat"
	"carelink/services/classifier"
	"carelink/services/directory"
	"carelink/services/media"
	"carelink/services/notification"
	"carelink/services/patient"
	"carelink/services/reminder"
	"carelink/services/speech"
	"carelink/services/triage"
	"carelink/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	cld, cloudName, _, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage: %v", err)
	}
	storageService := media.NewCloudinaryStorage(cld, cloudName)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	patRepo := patientRepoPkg.NewMongoPatientRepo()
	bookRepo := bookingRepoPkg.NewMongoBookingRepo()
	remRepo := reminderRepoPkg.NewMongoReminderRepo()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelStartup()

	if err := bookRepo.EnsureIndexes(startupCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// Seed the provider directory on first boot; afterwards the stored
	// catalog is authoritative.
	providers, err := provRepo.GetAll(startupCtx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load provider catalog: %v", err)
	}
	if len(providers) == 0 {
		providers = directory.DefaultCatalog()
		if err := provRepo.UpsertMany(startupCtx, providers); err != nil {
			logger.Sugar().Fatalf("main: failed to seed provider catalog: %v", err)
		}
		logger.Sugar().Infof("main: seeded provider catalog with %d entries", len(providers))
	}
	dir := directory.NewStaticDirectory(providers)

	// services.
	patientService := &patient.DefaultPatientService{
		Repo: patRepo,
	}

	notificationService, err := notification.NewDefaultNotificationService(patientService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	var payments booking.PaymentProcessor
	if config.AppConfig.StripeKey != "" {
		payments = &booking.StripePaymentProcessor{}
	}
	coordinator := &booking.DefaultCoordinator{
		Directory: dir,
		Gateway:   bookRepo,
		Payments:  payments,
	}

	chatStore := chat.NewRedisConversationStore(utils.GetChatCacheClient(), 30*24*time.Hour)
	chatService := &chat.DefaultChatService{
		Store:  chatStore,
		Engine: triage.NewEngine(),
	}

	reminderService := &reminder.DefaultReminderService{
		Repo:  remRepo,
		Queue: cron.NewAsynqEnqueuer(),
	}

	imageClassifier, err := classifier.NewGeminiClassifier(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize image classifier: %v", err)
	}

	transcriber, err := speech.NewGoogleTranscriber(config.AppConfig.SpeechCredentialsFile)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize transcriber: %v", err)
	}
	defer transcriber.Close()

	providerHandler := handlers.NewProviderHandler(dir)
	bookingHandler := handlers.NewBookingHandler(coordinator)
	chatHandler := handlers.NewChatHandler(chatService)
	patientHandler := handlers.NewPatientHandler(patientService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	analysisHandler := handlers.NewAnalysisHandler(imageClassifier)
	mediaHandler := handlers.NewMediaHandler(storageService)
	speechHandler := handlers.NewSpeechHandler(transcriber)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		PatientRepo: patRepo,

		// Provider directory endpoints.
		ListProvidersHandler:   providerHandler.ListProvidersHandler,
		GetProviderHandler:     providerHandler.GetProviderHandler,
		GetOfferedSlotsHandler: providerHandler.GetOfferedSlotsHandler,

		// Booking endpoints.
		BookHandler:         bookingHandler.BookHandler,
		ListUpcomingHandler: bookingHandler.ListUpcomingHandler,

		// Advisory chat endpoints.
		SendChatMessageHandler: chatHandler.SendChatMessageHandler,
		ChatHistoryHandler:     chatHandler.ChatHistoryHandler,
		ResetChatHandler:       chatHandler.ResetChatHandler,

		// Patient endpoints.
		RegisterPatientHandler:     patientHandler.RegisterPatientHandler,
		AuthenticatePatientHandler: patientHandler.AuthenticatePatientHandler,
		GetPatientHandler:          patientHandler.GetPatientHandler,
		ListPatientsHandler:        patientHandler.ListPatientsHandler,
		RevokeTokenHandler:         patientHandler.RevokeTokenHandler,
		UpdateVitalsHandler:        patientHandler.UpdateVitalsHandler,
		AddContactHandler:          patientHandler.AddContactHandler,
		RemoveContactHandler:       patientHandler.RemoveContactHandler,
		AddPrescriptionHandler:     patientHandler.AddPrescriptionHandler,
		UpdateFCMTokenHandler:      patientHandler.UpdateFCMTokenHandler,

		// Reminder endpoints.
		CreateReminderHandler:    reminderHandler.CreateReminderHandler,
		ListRemindersHandler:     reminderHandler.ListRemindersHandler,
		SetReminderStatusHandler: reminderHandler.SetReminderStatusHandler,

		// Image analysis endpoint.
		AnalyzeImageHandler: analysisHandler.AnalyzeImageHandler,

		// Media endpoints.
		UploadMediaHandler: mediaHandler.UploadMediaHandler,
		GetMediaURLHandler: mediaHandler.GetMediaURLHandler,
		DeleteMediaHandler: mediaHandler.DeleteMediaHandler,

		// Speech endpoint.
		TranscribeHandler: speechHandler.TranscribeHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Reminder delivery pipeline: a worker consumes the queue, a scheduler
	// scans for due reminders once a minute.
	cron.InitReminderWorker(notificationService)
	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	defer stopScheduler()
	cron.StartReminderScheduler(schedulerCtx, reminderService)

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

	stopScheduler()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
