package routes

import (
	"net/http"
	"time"

	"carelink/handlers"
	"carelink/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterProviderRoutes registers the doctor directory endpoints. The
// directory is public so the portal can render it before sign-in.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/providers")
	{
		api.GET("", hb.ListProvidersHandler)
		api.GET("/:id", hb.GetProviderHandler)
		api.GET("/:id/slots", hb.GetOfferedSlotsHandler)
	}
}

// RegisterBookingRoutes sets up the appointment endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthPatientMiddleware(hb.PatientRepo))
		api.POST("", hb.BookHandler)
		api.GET("/upcoming", hb.ListUpcomingHandler)
	}
}

// RegisterChatRoutes sets up the triage advisory chat endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthPatientMiddleware(hb.PatientRepo))
		api.POST("/messages", hb.SendChatMessageHandler)
		api.GET("/messages", hb.ChatHistoryHandler)
		api.DELETE("/messages", hb.ResetChatHandler)
	}
}

// RegisterPatientRoutes registers patient identity and record endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.POST("/register", hb.RegisterPatientHandler)
		api.POST("/login", hb.AuthenticatePatientHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthPatientMiddleware(hb.PatientRepo))
		api.GET("/me", hb.GetPatientHandler)
		api.GET("", hb.ListPatientsHandler)
		api.DELETE("/revoke", hb.RevokeTokenHandler)
		api.PUT("/me/vitals", hb.UpdateVitalsHandler)
		api.POST("/me/contacts", hb.AddContactHandler)
		api.DELETE("/me/contacts/:contactId", hb.RemoveContactHandler)
		api.POST("/me/prescriptions", hb.AddPrescriptionHandler)
		api.PUT("/me/fcm-token", hb.UpdateFCMTokenHandler)
	}
}

// RegisterReminderRoutes sets up medication reminder endpoints.
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reminders")
	{
		api.Use(middleware.JWTAuthPatientMiddleware(hb.PatientRepo))
		api.POST("", hb.CreateReminderHandler)
		api.GET("", hb.ListRemindersHandler)
		api.PUT("/:id/status", hb.SetReminderStatusHandler)
	}
}

// RegisterAnalysisRoutes registers the symptom photo and speech endpoints.
func RegisterAnalysisRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/analysis")
	{
		api.Use(middleware.JWTAuthPatientMiddleware(hb.PatientRepo))
		api.POST("/image", hb.AnalyzeImageHandler)
		api.POST("/speech", hb.TranscribeHandler)
	}
}

// RegisterMediaRoutes sets up report and scan storage endpoints.
func RegisterMediaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/media")
	{
		api.Use(middleware.JWTAuthPatientMiddleware(hb.PatientRepo))
		api.POST("/:folder", hb.UploadMediaHandler)
		api.GET("/:folder/:filename", hb.GetMediaURLHandler)
		api.DELETE("/:folder/:filename", hb.DeleteMediaHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "CareLink is up"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterProviderRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterReminderRoutes(r, hb)
	RegisterAnalysisRoutes(r, hb)
	RegisterMediaRoutes(r, hb)
	RegisterHealthRoute(r)
}
