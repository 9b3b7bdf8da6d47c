package handlers

import (
	patientRepo "carelink/database/repository/patient"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every route handler plus the repositories the
// middleware needs. main.go assembles it; routes.RegisterRoutes consumes it.
type HandlerBundle struct {
	PatientRepo patientRepo.PatientRepository

	// Provider directory endpoints.
	ListProvidersHandler   gin.HandlerFunc
	GetProviderHandler     gin.HandlerFunc
	GetOfferedSlotsHandler gin.HandlerFunc

	// Booking endpoints.
	BookHandler         gin.HandlerFunc
	ListUpcomingHandler gin.HandlerFunc

	// Advisory chat endpoints.
	SendChatMessageHandler gin.HandlerFunc
	ChatHistoryHandler     gin.HandlerFunc
	ResetChatHandler       gin.HandlerFunc

	// Patient endpoints.
	RegisterPatientHandler     gin.HandlerFunc
	AuthenticatePatientHandler gin.HandlerFunc
	GetPatientHandler          gin.HandlerFunc
	ListPatientsHandler        gin.HandlerFunc
	RevokeTokenHandler         gin.HandlerFunc
	UpdateVitalsHandler        gin.HandlerFunc
	AddContactHandler          gin.HandlerFunc
	RemoveContactHandler       gin.HandlerFunc
	AddPrescriptionHandler     gin.HandlerFunc
	UpdateFCMTokenHandler      gin.HandlerFunc

	// Reminder endpoints.
	CreateReminderHandler    gin.HandlerFunc
	ListRemindersHandler     gin.HandlerFunc
	SetReminderStatusHandler gin.HandlerFunc

	// Image analysis endpoint.
	AnalyzeImageHandler gin.HandlerFunc

	// Media endpoints.
	UploadMediaHandler gin.HandlerFunc
	GetMediaURLHandler gin.HandlerFunc
	DeleteMediaHandler gin.HandlerFunc

	// Speech endpoint.
	TranscribeHandler gin.HandlerFunc
}
