package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	bookingRepo "carelink/database/repository/booking"
	"carelink/models"
	"carelink/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCoordinator struct {
	confirmation *models.BookingConfirmation
	err          error
	gotReq       models.BookingRequest
}

func (s *stubCoordinator) Book(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.confirmation, nil
}

func (s *stubCoordinator) ListUpcoming(ctx context.Context, requesterID string) ([]models.BookingConfirmation, error) {
	return nil, nil
}

func performBooking(t *testing.T, coord booking.Coordinator, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("patientID", "pat-1") })
	router.POST("/api/bookings", NewBookingHandler(coord).BookHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBookHandlerSuccess(t *testing.T) {
	coord := &stubCoordinator{confirmation: &models.BookingConfirmation{
		BookingID:    "bk-1",
		ProviderName: "Dr. Singh",
		Date:         "2026-03-10",
		Time:         "12:00",
	}}

	w := performBooking(t, coord, `{"providerId":"prov-singh","date":"2026-03-10","time":"12:00"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "pat-1", coord.gotReq.RequesterID, "requester comes from the auth context, not the body")

	var resp models.BookingConfirmation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Dr. Singh", resp.ProviderName)
}

func TestBookHandlerErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "missing fields",
			err:        &booking.MissingFieldError{Fields: []string{"providerId", "date", "time"}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown provider",
			err:        &booking.UnknownProviderError{ID: "prov-nobody"},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "slot not offered",
			err:        &booking.SlotNotOfferedError{ProviderID: "prov-singh", Date: "2026-03-10", Time: "13:00"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "slot already booked",
			err:        bookingRepo.ErrSlotTaken,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "gateway failure",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performBooking(t, &stubCoordinator{err: tt.err}, `{"providerId":"x","date":"2026-03-10","time":"09:00"}`)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestBookHandlerMissingFieldsListsAll(t *testing.T) {
	coord := &stubCoordinator{err: &booking.MissingFieldError{Fields: []string{"providerId", "date", "time"}}}

	w := performBooking(t, coord, `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Fields []string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"providerId", "date", "time"}, resp.Fields)
}
