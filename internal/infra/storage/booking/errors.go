package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateBookingNumber возвращается при коллизии номера бронирования.
	// Не бизнес-ошибка: вызывающий код генерирует новый номер и повторяет вставку.
	ErrDuplicateBookingNumber = errors.New("booking.repository: duplicate booking number")

	// ErrDateRangeConflict возвращается, когда exclusion-констрейнт БД
	// отклонил вставку из-за пересечения дат с активным бронированием
	ErrDateRangeConflict = errors.New("booking.repository: date range conflicts with an active booking")

	// ErrStatusConflict возвращается, когда update не затронул запись,
	// потому что её текущий статус запрещает запрошенный переход.
	// Запись при этом существует — случай отличается от ErrBookingNotFound.
	ErrStatusConflict = errors.New("booking.repository: current status does not allow the transition")

	// ErrUnavailable возвращается при недоступности базы данных.
	// Повтор операции — ответственность вызывающего, не репозитория.
	ErrUnavailable = errors.New("booking.repository: storage unavailable")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
