package get_availability

import (
	"context"
	"time"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListActiveForRange(ctx context.Context, resource domain.ResourceRef, from, to time.Time) ([]*domain.Booking, error)
}

// ResourceRegistry интерфейс реестра бронируемых ресурсов
type ResourceRegistry interface {
	Exists(ctx context.Context, ref domain.ResourceRef) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
