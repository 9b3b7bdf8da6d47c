package handlers

import (
	"errors"
	"net/http"

	"carelink/models"
	"carelink/services/patient"
	"carelink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PatientHandler exposes patient registration, authentication and records.
type PatientHandler struct {
	Patients patient.PatientService
}

func NewPatientHandler(patients patient.PatientService) *PatientHandler {
	return &PatientHandler{Patients: patients}
}

func (h *PatientHandler) respondServiceError(c *gin.Context, err error, action string) {
	var validationErr *patient.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.JSONFieldError(c, http.StatusBadRequest, "invalid or missing fields", validationErr.Fields)
	case errors.Is(err, patient.ErrPatientNotFound):
		utils.JSONError(c, http.StatusNotFound, "patient not found", "")
	case errors.Is(err, patient.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
	default:
		getLogger(c).Error(action, zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, action, err.Error())
	}
}

// RegisterPatientHandler creates a patient record and returns a bearer token.
func (h *PatientHandler) RegisterPatientHandler(c *gin.Context) {
	var p models.Patient
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Patients.Register(c.Request.Context(), p)
	if err != nil {
		h.respondServiceError(c, err, "failed to register patient")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticatePatientHandler logs a patient in.
func (h *PatientHandler) AuthenticatePatientHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Patients.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.respondServiceError(c, err, "failed to authenticate")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPatientHandler returns the authenticated patient's record.
func (h *PatientHandler) GetPatientHandler(c *gin.Context) {
	patientID := c.GetString("patientID")
	p, err := h.Patients.GetByID(c.Request.Context(), patientID)
	if err != nil {
		h.respondServiceError(c, err, "failed to fetch patient")
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListPatientsHandler returns all patient records.
func (h *PatientHandler) ListPatientsHandler(c *gin.Context) {
	patients, err := h.Patients.GetAll(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, err, "failed to list patients")
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

// RevokeTokenHandler signs the patient out everywhere.
func (h *PatientHandler) RevokeTokenHandler(c *gin.Context) {
	patientID := c.GetString("patientID")
	if err := h.Patients.RevokeToken(c.Request.Context(), patientID); err != nil {
		h.respondServiceError(c, err, "failed to revoke token")
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateVitalsHandler records the patient's latest vitals.
func (h *PatientHandler) UpdateVitalsHandler(c *gin.Context) {
	patientID := c.GetString("patientID")
	var v models.Vitals
	if err := c.ShouldBindJSON(&v); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Patients.UpdateVitals(c.Request.Context(), patientID, v); err != nil {
		h.respondServiceError(c, err, "failed to update vitals")
		return
	}
	c.Status(http.StatusNoContent)
}

// AddContactHandler adds an emergency contact; name and phone are required.
func (h *PatientHandler) AddContactHandler(c *gin.Context) {
	patientID := c.GetString("patientID")
	var contact models.EmergencyContact
	if err := c.ShouldBindJSON(&contact); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Patients.AddEmergencyContact(c.Request.Context(), patientID, contact); err != nil {
		h.respondServiceError(c, err, "failed to add contact")
		return
	}
	c.Status(http.StatusCreated)
}

// RemoveContactHandler deletes an emergency contact by ID.
func (h *PatientHandler) RemoveContactHandler(c *gin.Context) {
	patientID := c.GetString("patientID")
	contactID := c.Param("contactId")
	if err := h.Patients.RemoveEmergencyContact(c.Request.Context(), patientID, contactID); err != nil {
		h.respondServiceError(c, err, "failed to remove contact")
		return
	}
	c.Status(http.StatusNoContent)
}

// AddPrescriptionHandler records an issued prescription on the patient.
func (h *PatientHandler) AddPrescriptionHandler(c *gin.Context) {
	patientID := c.GetString("patientID")
	var rx models.Prescription
	if err := c.ShouldBindJSON(&rx); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Patients.AddPrescription(c.Request.Context(), patientID, rx); err != nil {
		h.respondServiceError(c, err, "failed to add prescription")
		return
	}
	c.Status(http.StatusCreated)
}

// UpdateFCMTokenHandler stores the device push token reminders deliver to.
func (h *PatientHandler) UpdateFCMTokenHandler(c *gin.Context) {
	patientID := c.GetString("patientID")
	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if err := h.Patients.UpdateFCMToken(c.Request.Context(), patientID, input.Token); err != nil {
		h.respondServiceError(c, err, "failed to update FCM token")
		return
	}
	c.Status(http.StatusNoContent)
}
