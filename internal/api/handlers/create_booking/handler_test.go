package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
	createBooking "github.com/tourmp/TMP-ReservationService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	execute func(ctx context.Context, req *createBooking.Request) (*domain.Booking, error)
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) (*domain.Booking, error) {
	return f.execute(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"resourceType": "homestay",
		"resourceId":   7,
		"checkIn":      "2024-03-15",
		"checkOut":     "2024-03-18",
		"guests":       map[string]interface{}{"adults": 2, "children": 1},
		"guestContact": map[string]interface{}{
			"name":  "Анна Петрова",
			"email": "anna@example.com",
			"phone": "+79990001122",
		},
		"pricing": map[string]interface{}{"basePrice": 9000, "total": 9000},
	}
}

func doRequest(t *testing.T, h *Handler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{
		execute: func(_ context.Context, req *createBooking.Request) (*domain.Booking, error) {
			return &domain.Booking{
				ID:            42,
				BookingNumber: "BK-20240301-A1B2C3",
				Resource:      req.Resource,
				CheckIn:       req.CheckIn,
				CheckOut:      req.CheckOut,
				Nights:        3,
				Guests:        req.Guests.WithTotal(),
				GuestContact:  req.GuestContact,
				Pricing:       req.Pricing,
				Status:        domain.StatusPending,
				PaymentStatus: domain.PaymentPending,
				CreatedAt:     time.Now().UTC(),
				UpdatedAt:     time.Now().UTC(),
			}, nil
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, validBody())

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(42), resp["id"])
	assert.Equal(t, "BK-20240301-A1B2C3", resp["bookingNumber"])
	assert.Equal(t, "pending", resp["status"])
	assert.Equal(t, "2024-03-15", resp["checkIn"])
	assert.Equal(t, "2024-03-18", resp["checkOut"])
}

func TestHandle_MalformedJSON(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownResourceType(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	body := validBody()
	body["resourceType"] = "camper"

	rec := doRequest(t, h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDateFormat(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	body := validBody()
	body["checkIn"] = "15.03.2024"

	rec := doRequest(t, h, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"conflict", createBooking.ErrDateRangeConflict, http.StatusConflict},
		{"resource not found", createBooking.ErrResourceNotFound, http.StatusNotFound},
		{"invalid dates", createBooking.ErrInvalidDateRange, http.StatusBadRequest},
		{"invalid guests", createBooking.ErrInvalidGuestCount, http.StatusBadRequest},
		{"invalid pricing", createBooking.ErrInvalidPricing, http.StatusBadRequest},
		{"invalid contact", createBooking.ErrInvalidContact, http.StatusBadRequest},
		{"unavailable", createBooking.ErrUnavailable, http.StatusServiceUnavailable},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{
				execute: func(_ context.Context, _ *createBooking.Request) (*domain.Booking, error) {
					return nil, tt.err
				},
			}
			h := NewHandler(uc, nopLogger{})

			rec := doRequest(t, h, validBody())
			assert.Equal(t, tt.code, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}
