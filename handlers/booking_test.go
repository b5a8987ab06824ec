package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lashstudio/handlers"
	"lashstudio/models"
	"lashstudio/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubBookingService struct {
	createResp *models.BookingResponse
	createErr  error
	booking    *models.Booking
	getErr     error
	cancelErr  error
}

func (s *stubBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingResponse, error) {
	return s.createResp, s.createErr
}

func (s *stubBookingService) GetBookingDetails(ctx context.Context, number string) (*models.Booking, error) {
	return s.booking, s.getErr
}

func (s *stubBookingService) CancelBooking(ctx context.Context, number string) error {
	return s.cancelErr
}

func (s *stubBookingService) UpdateBookingStatus(ctx context.Context, id, status string) error {
	return nil
}

func (s *stubBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingService) DeleteBooking(ctx context.Context, id string) error {
	return nil
}

func (s *stubBookingService) DeleteAllBookings(ctx context.Context) error {
	return nil
}

func newBookingRouter(svc booking.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewBookingHandler(svc, zap.NewNop())
	r := gin.New()
	r.POST("/api/booking", h.CreateBooking)
	r.GET("/api/booking/:bookingNumber", h.GetBooking)
	r.POST("/api/booking/:bookingNumber/cancel", h.CancelBooking)
	return r
}

func TestCreateBookingEndpoint_Success(t *testing.T) {
	svc := &stubBookingService{
		createResp: &models.BookingResponse{
			BookingNumber: "12345",
			EmailSubject:  "Your Appointment is Confirmed ✨",
			EmailBody:     "<html></html>",
		},
	}
	r := newBookingRouter(svc)

	body := `{"name":"Jane Doe","email":"jane@example.com","phone":"07700900123","postcode":"SW1A 1AA","service":"Hybrid Lashes","date":"Dec 25, 2025"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "12345", resp.BookingNumber)
}

func TestCreateBookingEndpoint_MalformedPayload(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader(`{"name":"J"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid data")
}

func TestCreateBookingEndpoint_ValidationErrorIs400(t *testing.T) {
	svc := &stubBookingService{
		createErr: &booking.ValidationError{Field: "email", Message: "please enter a valid email address"},
	}
	r := newBookingRouter(svc)

	body := `{"name":"Jane Doe","email":"jane@nowhere","phone":"07700900123","postcode":"SW1A 1AA","service":"Hybrid Lashes","date":"Dec 25, 2025"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/booking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBookingEndpoint_Found(t *testing.T) {
	svc := &stubBookingService{
		booking: &models.Booking{BookingNumber: "12345", Service: "Classic Lashes", Status: models.StatusConfirmed},
	}
	r := newBookingRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/12345", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"bookingNumber":"12345"`)
}

func TestGetBookingEndpoint_NotFound(t *testing.T) {
	r := newBookingRouter(&stubBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/booking/00000", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "No booking found with this reference")
}

func TestCancelBookingEndpoint_StatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"success", nil, http.StatusOK},
		{"not found", &booking.NotFoundError{BookingNumber: "00000"}, http.StatusNotFound},
		{"already cancelled", &booking.AlreadyCancelledError{BookingNumber: "12345"}, http.StatusConflict},
		{"storage failure", &booking.StorageError{Op: "cancel", Err: assert.AnError}, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newBookingRouter(&stubBookingService{cancelErr: tc.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/booking/12345/cancel", nil)
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
		})
	}
}
