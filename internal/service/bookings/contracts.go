package bookings

import (
	"context"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований.
// Cancel и UpdateStatus — защищенные записи: условие по текущему статусу
// входит в сам update, несоответствие возвращается как ErrStatusConflict.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByNumber(ctx context.Context, number string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int64, error)
	Cancel(ctx context.Context, id int64, reason *string) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, allowedFrom []domain.BookingStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
