package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/tourmp/TMP-ReservationService/internal/api/handlers"
	"github.com/tourmp/TMP-ReservationService/internal/domain"
	getAvailability "github.com/tourmp/TMP-ReservationService/internal/usecase/get_availability"
)

const (
	msgInvalidResource  = "некорректный тип или идентификатор ресурса"
	msgInvalidDates     = "некорректный формат дат, ожидается YYYY-MM-DD"
	msgInvalidDateRange = "некорректный диапазон дат"
	msgRangeTooWide     = "запрошенный период слишком большой"
	msgResourceNotFound = "бронируемый объект не найден"
	msgUnavailable      = "сервис временно недоступен, повторите попытку"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceType}/{resourceId}/availability?from=&to=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	resourceType, err := domain.ParseResourceType(vars["resourceType"])
	if err != nil {
		h.logger.Warn("GET /availability - Invalid resource type: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResource)
		return
	}

	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResource)
		return
	}

	from, to, err := parseWindow(r)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &getAvailability.Request{
		Resource: domain.ResourceRef{Type: resourceType, ID: resourceID},
		From:     from,
		To:       to,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrResourceNotFound):
			h.logger.Warn("GET /availability - Resource not found: %s/%d", resourceType, resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, getAvailability.ErrRangeTooWide):
			handlers.RespondBadRequest(w, msgRangeTooWide)

		case errors.Is(err, getAvailability.ErrInvalidDateRange), errors.Is(err, getAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, getAvailability.ErrUnavailable):
			h.logger.Error("GET /availability - Storage unavailable: %v", err)
			handlers.RespondUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("GET /availability - Failed for %s/%d: %v", resourceType, resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromUseCaseResponse(resp))
}

// defaultWindowDays окно по умолчанию, когда границы не заданы
const defaultWindowDays = 30

// parseWindow читает границы окна из query-параметров.
// По умолчанию: from — сегодня (UTC), to — from + 30 дней.
func parseWindow(r *http.Request) (from, to time.Time, err error) {
	q := r.URL.Query()

	if raw := q.Get("from"); raw != "" {
		from, err = time.Parse(domain.DateFormat, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		from = domain.TruncateToDate(time.Now().UTC())
	}

	if raw := q.Get("to"); raw != "" {
		to, err = time.Parse(domain.DateFormat, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		to = from.AddDate(0, 0, defaultWindowDays)
	}

	return from, to, nil
}
