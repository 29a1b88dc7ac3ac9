package create_booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	HasOverlap(ctx context.Context, resource domain.ResourceRef, checkIn, checkOut time.Time, excludeID *int64) (bool, error)
}

// ResourceRegistry интерфейс реестра бронируемых ресурсов
type ResourceRegistry interface {
	Exists(ctx context.Context, ref domain.ResourceRef) (bool, error)
	TitleOf(ctx context.Context, ref domain.ResourceRef) (*string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// NumberGenerator интерфейс генерации номеров бронирований (для тестирования)
type NumberGenerator interface {
	Next(now time.Time) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// UUIDNumberGenerator генерирует номера вида BK-20240315-1A2B3C.
// Суффикс берется из UUID, при коллизии номер просто генерируется заново.
type UUIDNumberGenerator struct{}

// Next возвращает новый номер бронирования
func (g *UUIDNumberGenerator) Next(now time.Time) string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("BK-%s-%s", now.Format("20060102"), token)
}
