package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
	bookingRepo "github.com/tourmp/TMP-ReservationService/internal/infra/storage/booking"
)

// maxNumberAttempts сколько раз перегенерировать номер бронирования
// при коллизии уникальности, прежде чем сдаться
const maxNumberAttempts = 3

// UseCase use case для создания бронирования.
//
// Гонка "проверили — вставили" между конкурентными запросами закрыта дважды:
// проверка пересечения и вставка выполняются в одной сериализуемой
// транзакции, а в БД стоит exclusion-констрейнт по диапазону дат.
// Довериться только предварительной проверке было бы ошибкой корректности.
type UseCase struct {
	bookingRepo     BookingRepository
	registry        ResourceRegistry
	txManager       TransactionManager
	timeProvider    TimeProvider
	numberGenerator NumberGenerator
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	registry ResourceRegistry,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		registry:        registry,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		numberGenerator: &UUIDNumberGenerator{},
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("CreateBooking: resource=%s, checkIn=%s, checkOut=%s, adults=%d, children=%d",
		req.Resource, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat),
		req.Guests.Adults, req.Guests.Children)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	checkIn := domain.TruncateToDate(req.CheckIn)
	checkOut := domain.TruncateToDate(req.CheckOut)

	// 2. Ресурс должен существовать; его отсутствие — не конфликт дат,
	// а ошибка предусловия
	exists, err := uc.registry.Exists(ctx, req.Resource)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check resource %s: %v", req.Resource, err)
		return nil, fmt.Errorf("%w: failed to check resource: %v", ErrInternal, err)
	}
	if !exists {
		uc.logger.Warn("CreateBooking: resource %s not found", req.Resource)
		return nil, ErrResourceNotFound
	}

	// 3. Снимок названия ресурса. Необязателен: при ошибке бронирование
	// создается без него
	title, err := uc.registry.TitleOf(ctx, req.Resource)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to snapshot title of %s: %v", req.Resource, err)
		title = nil
	}

	// 4. Быстрая проверка занятости до транзакции, чтобы не тратить
	// сериализуемую транзакцию на заведомый конфликт. Не авторитетна:
	// решает проверка внутри транзакции и констрейнт БД.
	conflict, err := uc.bookingRepo.HasOverlap(ctx, req.Resource, checkIn, checkOut, nil)
	if err != nil {
		return nil, uc.mapRepoError("pre-check overlap", err)
	}
	if conflict {
		uc.logger.Warn("CreateBooking: date range conflict for %s [%s, %s)",
			req.Resource, checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
		return nil, ErrDateRangeConflict
	}

	// 5. Производные поля считаются явно при конструировании,
	// никаких хуков при сохранении
	booking := &domain.Booking{
		Resource:        req.Resource,
		ResourceTitle:   title,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Nights:          domain.NightsBetween(checkIn, checkOut),
		Guests:          req.Guests.WithTotal(),
		GuestContact:    normalizeContact(req.GuestContact),
		SpecialRequests: req.SpecialRequests,
		Pricing:         req.Pricing,
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentPending,
	}

	// 6. Вставка с перегенерацией номера при коллизии. Каждая попытка —
	// отдельная транзакция: после нарушения констрейнта PostgreSQL
	// не принимает запросы до отката
	var created *domain.Booking
	for attempt := 1; attempt <= maxNumberAttempts; attempt++ {
		booking.BookingNumber = uc.numberGenerator.Next(uc.timeProvider.Now())

		err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			// Перепроверяем занятость в той же транзакции, что и вставка:
			// между шагом 4 и этим местом мог закоммититься конкурент
			conflict, err := uc.bookingRepo.HasOverlap(txCtx, req.Resource, checkIn, checkOut, nil)
			if err != nil {
				return err
			}
			if conflict {
				return ErrDateRangeConflict
			}

			created, err = uc.bookingRepo.Create(txCtx, booking)
			return err
		})

		if errors.Is(err, bookingRepo.ErrDuplicateBookingNumber) {
			// Коллизия номера — не конфликт с намерением вызывающего,
			// наружу не отдается
			uc.logger.Warn("CreateBooking: booking number collision on attempt %d, regenerating", attempt)
			continue
		}
		break
	}

	if err != nil {
		switch {
		case errors.Is(err, ErrDateRangeConflict), errors.Is(err, bookingRepo.ErrDateRangeConflict):
			uc.logger.Warn("CreateBooking: date range conflict for %s [%s, %s)",
				req.Resource, checkIn.Format(domain.DateFormat), checkOut.Format(domain.DateFormat))
			return nil, ErrDateRangeConflict
		case errors.Is(err, bookingRepo.ErrDuplicateBookingNumber):
			uc.logger.Error("CreateBooking: booking number collisions exhausted %d attempts", maxNumberAttempts)
			return nil, fmt.Errorf("%w: booking number generation failed", ErrInternal)
		default:
			return nil, uc.mapRepoError("create booking", err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d number=%s",
		created.ID, created.BookingNumber)

	return created, nil
}

// mapRepoError транслирует ошибки репозитория в ошибки usecase
func (uc *UseCase) mapRepoError(op string, err error) error {
	if errors.Is(err, bookingRepo.ErrUnavailable) {
		uc.logger.Error("CreateBooking: storage unavailable during %s: %v", op, err)
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	uc.logger.Error("CreateBooking: failed to %s: %v", op, err)
	return fmt.Errorf("%w: failed to %s: %v", ErrInternal, op, err)
}
