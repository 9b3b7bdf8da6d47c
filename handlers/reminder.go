package handlers

import (
	"errors"
	"net/http"

	"carelink/models"
	"carelink/services/reminder"
	"carelink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler exposes medication reminder CRUD for the signed-in patient.
type ReminderHandler struct {
	Reminders reminder.ReminderService
}

func NewReminderHandler(reminders reminder.ReminderService) *ReminderHandler {
	return &ReminderHandler{Reminders: reminders}
}

// CreateReminderHandler registers a daily medication reminder.
func (h *ReminderHandler) CreateReminderHandler(c *gin.Context) {
	var rem models.Reminder
	if err := c.ShouldBindJSON(&rem); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	rem.PatientID = c.GetString("patientID")

	created, err := h.Reminders.Create(c.Request.Context(), rem)
	if err != nil {
		var validationErr *reminder.ValidationError
		if errors.As(err, &validationErr) {
			utils.JSONFieldError(c, http.StatusBadRequest, "invalid or missing fields", validationErr.Fields)
			return
		}
		getLogger(c).Error("failed to create reminder", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create reminder", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListRemindersHandler returns the patient's reminders, newest first.
func (h *ReminderHandler) ListRemindersHandler(c *gin.Context) {
	patientID := c.GetString("patientID")
	reminders, err := h.Reminders.List(c.Request.Context(), patientID)
	if err != nil {
		getLogger(c).Error("failed to list reminders", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reminders", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

// SetReminderStatusHandler pauses or resumes a reminder.
func (h *ReminderHandler) SetReminderStatusHandler(c *gin.Context) {
	patientID := c.GetString("patientID")
	id := c.Param("id")

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	err := h.Reminders.SetStatus(c.Request.Context(), patientID, id, input.Status)
	switch {
	case err == nil:
		c.Status(http.StatusNoContent)
	case errors.Is(err, reminder.ErrReminderNotFound):
		utils.JSONError(c, http.StatusNotFound, "reminder not found", id)
	default:
		var validationErr *reminder.ValidationError
		if errors.As(err, &validationErr) {
			utils.JSONFieldError(c, http.StatusBadRequest, "invalid or missing fields", validationErr.Fields)
			return
		}
		getLogger(c).Error("failed to update reminder", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update reminder", err.Error())
	}
}
