package create_booking

import "errors"

var (
	// ErrInvalidDateRange возвращается, когда checkIn не раньше checkOut.
	// Бронирования на ноль ночей недопустимы.
	ErrInvalidDateRange = errors.New("create_booking: invalid date range")

	// ErrInvalidGuestCount возвращается при недопустимом составе гостей
	ErrInvalidGuestCount = errors.New("create_booking: invalid guest count")

	// ErrInvalidPricing возвращается при отрицательных суммах в стоимости
	ErrInvalidPricing = errors.New("create_booking: invalid pricing")

	// ErrInvalidContact возвращается при неполных контактных данных гостя
	ErrInvalidContact = errors.New("create_booking: invalid guest contact")

	// ErrResourceNotFound возвращается, когда бронируемый ресурс не существует
	ErrResourceNotFound = errors.New("create_booking: resource not found")

	// ErrDateRangeConflict возвращается, когда запрошенный диапазон дат
	// пересекается с активным бронированием того же ресурса
	ErrDateRangeConflict = errors.New("create_booking: date range conflict")

	// ErrInvalidInput возвращается при прочих некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrUnavailable возвращается при недоступности хранилища.
	// Повтор — ответственность вызывающего: операция могла закоммититься.
	ErrUnavailable = errors.New("create_booking: storage unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
