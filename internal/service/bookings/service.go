package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
	bookingRepo "github.com/tourmp/TMP-ReservationService/internal/infra/storage/booking"
	"github.com/tourmp/TMP-ReservationService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями: чтение и переходы статусов.
// Создание бронирования живет в usecase/create_booking — там транзакция
// и проверка пересечений.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", id, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetByNumber получает бронирование по внешнему номеру
func (s *Service) GetByNumber(ctx context.Context, number string) (*models.BookingResponse, error) {
	s.logger.Info("GetByNumber: fetching booking number=%s", number)

	booking, err := s.bookingRepo.GetByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByNumber: booking number=%s not found", number)
			return nil, ErrBookingNotFound
		}
		if errors.Is(err, bookingRepo.ErrUnavailable) {
			return nil, fmt.Errorf("%w: GetByNumber: %v", ErrUnavailable, err)
		}
		s.logger.Error("GetByNumber: repository error for number=%s: %v", number, err)
		return nil, fmt.Errorf("%w: GetByNumber - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией по статусу и ресурсу,
// с пагинацией. Чистое чтение: видит любое закоммиченное состояние.
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("List: fetching bookings page=%d limit=%d", filter.Page, filter.Limit)

	items, total, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrUnavailable) {
			return nil, fmt.Errorf("%w: List: %v", ErrUnavailable, err)
		}
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d of %d bookings", len(items), total)
	return models.FromDomainBookingList(items, total, filter.Page, filter.Limit), nil
}

// Cancel отменяет бронирование.
// Отмена разрешена только из pending и confirmed; повторная отмена
// возвращает ErrIllegalTransition, не трогая запись — cancelledAt
// первой отмены сохраняется. Проверка здесь — быстрый отказ; решающее
// слово за репозиторием, чей update сам проверяет текущий статус и
// потому не перезапишет конкурентный переход.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, s.mapRepoError("Cancel", bookingID, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrIllegalTransition
	}

	var reason *string
	if req != nil && req.Reason != nil && *req.Reason != "" {
		if len(*req.Reason) > domain.MaxCancellationReasonLength {
			return nil, fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
		}
		reason = req.Reason
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, reason); err != nil {
		return nil, s.mapRepoError("Cancel", bookingID, err)
	}

	cancelled, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, s.mapRepoError("Cancel", bookingID, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(cancelled), nil
}

// Confirm подтверждает бронирование (pending -> confirmed)
func (s *Service) Confirm(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	return s.transition(ctx, bookingID, domain.StatusConfirmed, "Confirm",
		[]domain.BookingStatus{domain.StatusPending})
}

// Complete завершает бронирование (confirmed -> completed)
func (s *Service) Complete(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	return s.transition(ctx, bookingID, domain.StatusCompleted, "Complete",
		[]domain.BookingStatus{domain.StatusConfirmed})
}

// transition выполняет переход статуса. Предварительная проверка по
// прочитанной записи дает понятный ранний отказ, но update в репозитории
// сам ограничен allowedFrom — конкурентный переход между чтением и
// записью вернет ErrStatusConflict, а не перезапишет статус.
func (s *Service) transition(ctx context.Context, bookingID int64, target domain.BookingStatus, op string, allowedFrom []domain.BookingStatus) (*models.BookingResponse, error) {
	s.logger.Info("%s: booking id=%d -> %s", op, bookingID, target)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, s.mapRepoError(op, bookingID, err)
	}

	if !transitionAllowed(booking.Status, allowedFrom) {
		s.logger.Warn("%s: illegal transition for booking id=%d: %s -> %s", op, bookingID, booking.Status, target)
		return nil, ErrIllegalTransition
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, target, allowedFrom); err != nil {
		return nil, s.mapRepoError(op, bookingID, err)
	}

	updated, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, s.mapRepoError(op, bookingID, err)
	}

	s.logger.Info("%s: booking id=%d is now %s", op, bookingID, updated.Status)
	return models.FromDomainBooking(updated), nil
}

func transitionAllowed(current domain.BookingStatus, allowedFrom []domain.BookingStatus) bool {
	for _, s := range allowedFrom {
		if current == s {
			return true
		}
	}
	return false
}

// mapRepoError транслирует ошибки репозитория в ошибки сервиса
func (s *Service) mapRepoError(op string, bookingID int64, err error) error {
	switch {
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Warn("%s: booking id=%d not found", op, bookingID)
		return ErrBookingNotFound
	case errors.Is(err, bookingRepo.ErrStatusConflict):
		s.logger.Warn("%s: booking id=%d was transitioned concurrently", op, bookingID)
		return ErrIllegalTransition
	case errors.Is(err, bookingRepo.ErrUnavailable):
		s.logger.Error("%s: storage unavailable for booking id=%d: %v", op, bookingID, err)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	default:
		s.logger.Error("%s: repository error for booking id=%d: %v", op, bookingID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
