package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tourmp/TMP-ReservationService/internal/api/handlers"
	"github.com/tourmp/TMP-ReservationService/internal/service/bookings"
	"github.com/tourmp/TMP-ReservationService/internal/service/bookings/models"
)

const (
	msgNotFound    = "бронирование не найдено"
	msgUnavailable = "сервис временно недоступен, повторите попытку"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
// Принимает как внутренний ID, так и внешний номер бронирования (BK-...).
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	key := vars["bookingId"]

	var err error
	var booking *models.BookingResponse

	if id, parseErr := strconv.ParseInt(key, 10, 64); parseErr == nil {
		booking, err = h.service.GetByID(r.Context(), id)
	} else {
		booking, err = h.service.GetByNumber(r.Context(), key)
	}

	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: key=%s", key)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrUnavailable):
			h.logger.Error("GET /bookings/{id} - Storage unavailable: key=%s: %v", key, err)
			handlers.RespondUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to fetch booking: key=%s, error=%v", key, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, booking)
}
