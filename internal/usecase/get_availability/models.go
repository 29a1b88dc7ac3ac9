package get_availability

import (
	"time"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
)

// Request модель запроса календаря занятости.
// Окно [From, To) полуоткрытое, как и сами бронирования.
type Request struct {
	Resource domain.ResourceRef
	From     time.Time
	To       time.Time
}

// Day занятость одной даты
type Day struct {
	Date      time.Time
	Available bool
}

// BookedRange занятый диапазон дат [CheckIn, CheckOut)
type BookedRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Response календарь занятости ресурса
type Response struct {
	Resource domain.ResourceRef
	From     time.Time
	To       time.Time
	Days     []Day
	Booked   []BookedRange
}
