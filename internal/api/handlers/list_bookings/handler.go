package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/tourmp/TMP-ReservationService/internal/api/handlers"
	"github.com/tourmp/TMP-ReservationService/internal/service/bookings"
	"github.com/tourmp/TMP-ReservationService/internal/service/bookings/models"
)

const (
	msgInvalidFilter = "некорректные параметры фильтрации"
	msgUnavailable   = "сервис временно недоступен, повторите попытку"
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

// Handle GET /api/v1/bookings?status=&resourceType=&resourceId=&page=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		case errors.Is(err, bookings.ErrUnavailable):
			h.logger.Error("GET /bookings - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseQuery разбирает query-параметры в модель сервиса
func parseQuery(r *http.Request) (*models.ListBookingsRequest, error) {
	q := r.URL.Query()
	req := &models.ListBookingsRequest{
		Page:  1,
		Limit: 0, // сервис подставит значение по умолчанию
	}

	if v := q.Get("status"); v != "" {
		req.Status = &v
	}
	if v := q.Get("resourceType"); v != "" {
		req.ResourceType = &v
	}
	if v := q.Get("resourceId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ResourceID = &id
	}
	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.Page = page
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}

	return req, nil
}
