package domain

// Business validation constants
const (
	MinAdults                   = 1
	MaxSpecialRequestsLength    = 1000
	MaxCancellationReasonLength = 500
	MaxPageLimit                = 100
	DefaultPageLimit            = 20
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses список статусов, при которых бронирование блокирует
// свой диапазон дат. Используется индексом пересечений и частичным
// exclusion-констрейнтом в БД — списки должны совпадать.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// TerminalStatuses список терминальных статусов
var TerminalStatuses = []BookingStatus{
	StatusCancelled,
	StatusCompleted,
}
