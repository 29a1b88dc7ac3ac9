package get_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourmp/TMP-ReservationService/internal/service/bookings"
	"github.com/tourmp/TMP-ReservationService/internal/service/bookings/models"
)

type fakeService struct {
	getByID     func(ctx context.Context, id int64) (*models.BookingResponse, error)
	getByNumber func(ctx context.Context, number string) (*models.BookingResponse, error)
}

func (f *fakeService) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	return f.getByID(ctx, id)
}

func (f *fakeService) GetByNumber(ctx context.Context, number string) (*models.BookingResponse, error) {
	return f.getByNumber(ctx, number)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testResponse() *models.BookingResponse {
	return &models.BookingResponse{
		ID:            42,
		BookingNumber: "BK-20240301-A1B2C3",
		ResourceType:  "homestay",
		ResourceID:    7,
		CheckIn:       "2024-03-15",
		CheckOut:      "2024-03-18",
		Nights:        3,
		Status:        "confirmed",
		PaymentStatus: "pending",
	}
}

func doRequest(t *testing.T, h *Handler, key string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+key, nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": key})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ByID(t *testing.T) {
	svc := &fakeService{
		getByID: func(_ context.Context, id int64) (*models.BookingResponse, error) {
			require.Equal(t, int64(42), id)
			return testResponse(), nil
		},
	}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, "42")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, float64(42), resp["id"])
	assert.Equal(t, "BK-20240301-A1B2C3", resp["bookingNumber"])
	assert.Equal(t, "homestay", resp["resourceType"])
	assert.Equal(t, "confirmed", resp["status"])
}

// Нечисловой ключ трактуется как внешний номер бронирования
func TestHandle_ByNumber(t *testing.T) {
	svc := &fakeService{
		getByNumber: func(_ context.Context, number string) (*models.BookingResponse, error) {
			require.Equal(t, "BK-20240301-A1B2C3", number)
			return testResponse(), nil
		},
	}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(t, h, "BK-20240301-A1B2C3")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2024-03-15", resp["checkIn"])
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"unavailable", bookings.ErrUnavailable, http.StatusServiceUnavailable},
		{"internal", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{
				getByID: func(_ context.Context, _ int64) (*models.BookingResponse, error) {
					return nil, tt.err
				},
			}
			h := NewHandler(svc, nopLogger{})

			rec := doRequest(t, h, "42")
			assert.Equal(t, tt.code, rec.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])
		})
	}
}
