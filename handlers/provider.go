package handlers

import (
	"net/http"
	"time"

	"carelink/models"
	"carelink/services/availability"
	"carelink/services/directory"
	"carelink/utils"

	"github.com/gin-gonic/gin"
)

// ProviderHandler serves the provider directory with availability details.
type ProviderHandler struct {
	Directory directory.Directory
}

func NewProviderHandler(dir directory.Directory) *ProviderHandler {
	return &ProviderHandler{Directory: dir}
}

// providerView decorates a Provider with the resolved wait information the
// portal shows next to each card.
type providerView struct {
	models.Provider
	AvailableNow bool   `json:"availableNow"`
	WaitTime     string `json:"waitTime,omitempty"` // e.g. "1h 5m"; empty when available now
}

func buildProviderView(p models.Provider, now time.Time) providerView {
	view := providerView{Provider: p, AvailableNow: availability.IsAvailableNow(p)}
	if !view.AvailableNow {
		view.WaitTime = availability.FormatWait(availability.TimeUntilAvailable(p, now))
	}
	return view
}

// ListProvidersHandler returns the catalog in stable directory order.
func (h *ProviderHandler) ListProvidersHandler(c *gin.Context) {
	now := time.Now()
	providers := h.Directory.List()
	views := make([]providerView, 0, len(providers))
	for _, p := range providers {
		views = append(views, buildProviderView(p, now))
	}
	c.JSON(http.StatusOK, gin.H{"providers": views})
}

// GetProviderHandler returns a single provider by ID.
func (h *ProviderHandler) GetProviderHandler(c *gin.Context) {
	id := c.Param("id")
	p, err := h.Directory.FindByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "provider not found", id)
		return
	}
	c.JSON(http.StatusOK, buildProviderView(*p, time.Now()))
}

// GetOfferedSlotsHandler returns the provider's fixed daily slot list for a
// date. The list is what could be offered; booked state is not filtered here.
func (h *ProviderHandler) GetOfferedSlotsHandler(c *gin.Context) {
	id := c.Param("id")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required", "")
		return
	}

	p, err := h.Directory.FindByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "provider not found", id)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"providerId": p.ID,
		"date":       date,
		"slots":      availability.OfferedSlots(*p, date),
	})
}
