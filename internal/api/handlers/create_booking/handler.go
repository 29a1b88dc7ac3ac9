package create_booking

import (
	"errors"
	"net/http"

	"github.com/tourmp/TMP-ReservationService/internal/api/handlers"
	"github.com/tourmp/TMP-ReservationService/internal/service/bookings/models"
	createBooking "github.com/tourmp/TMP-ReservationService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "некорректный формат дат, ожидается YYYY-MM-DD"
	msgInvalidDateRange   = "дата заезда должна быть раньше даты выезда"
	msgInvalidGuests      = "некорректный состав гостей"
	msgInvalidPricing     = "некорректная стоимость"
	msgInvalidContact     = "не заполнены контактные данные гостя"
	msgResourceNotFound   = "бронируемый объект не найден"
	msgDateConflict       = "выбранные даты уже заняты"
	msgUnavailable        = "сервис временно недоступен, повторите попытку"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrDateRangeConflict):
			h.logger.Warn("POST /bookings - Date range conflict: resource=%s/%d, checkIn=%s, checkOut=%s",
				req.ResourceType, req.ResourceID, req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgDateConflict)

		case errors.Is(err, createBooking.ErrResourceNotFound):
			h.logger.Warn("POST /bookings - Resource not found: %s/%d", req.ResourceType, req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createBooking.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: checkIn=%s, checkOut=%s", req.CheckIn, req.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, createBooking.ErrInvalidGuestCount):
			h.logger.Warn("POST /bookings - Invalid guest count: adults=%d, children=%d",
				req.Guests.Adults, req.Guests.Children)
			handlers.RespondBadRequest(w, msgInvalidGuests)

		case errors.Is(err, createBooking.ErrInvalidPricing):
			h.logger.Warn("POST /bookings - Invalid pricing")
			handlers.RespondBadRequest(w, msgInvalidPricing)

		case errors.Is(err, createBooking.ErrInvalidContact):
			h.logger.Warn("POST /bookings - Invalid guest contact")
			handlers.RespondBadRequest(w, msgInvalidContact)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrUnavailable):
			h.logger.Error("POST /bookings - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: resource=%s/%d, error=%v",
				req.ResourceType, req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: id=%d, number=%s",
		booking.ID, booking.BookingNumber)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(booking))
}
