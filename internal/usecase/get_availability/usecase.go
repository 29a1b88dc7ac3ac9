package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
	bookingRepo "github.com/tourmp/TMP-ReservationService/internal/infra/storage/booking"
)

// UseCase use case календаря занятости ресурса.
// Чистое чтение: отвечает по закоммиченному состоянию, без блокировок.
type UseCase struct {
	bookingRepo BookingRepository
	registry    ResourceRegistry
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	registry ResourceRegistry,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		registry:    registry,
		logger:      logger,
	}
}

// Execute выполняет use case получения календаря занятости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: resource=%s, from=%s, to=%s",
		req.Resource, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	from := domain.TruncateToDate(req.From)
	to := domain.TruncateToDate(req.To)

	// 2. Ресурс должен существовать
	exists, err := uc.registry.Exists(ctx, req.Resource)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to check resource %s: %v", req.Resource, err)
		return nil, fmt.Errorf("%w: failed to check resource: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("GetAvailability: resource %s not found", req.Resource)
		return nil, ErrResourceNotFound
	}

	// 3. Активные бронирования, пересекающие окно
	bookings, err := uc.bookingRepo.ListActiveForRange(ctx, req.Resource, from, to)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrUnavailable) {
			uc.logger.Error("GetAvailability: storage unavailable for %s: %v", req.Resource, err)
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		uc.logger.Error("GetAvailability: failed to list bookings for %s: %v", req.Resource, err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	// 4. Календарная математика — чистые функции над выборкой
	resp := &Response{
		Resource: req.Resource,
		From:     from,
		To:       to,
		Days:     buildDays(from, to, bookings),
		Booked:   mergeBookedRanges(from, to, bookings),
	}

	uc.logger.Info("GetAvailability: resource=%s, %d days, %d booked ranges",
		req.Resource, len(resp.Days), len(resp.Booked))

	return resp, nil
}
