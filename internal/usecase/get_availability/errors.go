package get_availability

import "errors"

var (
	// ErrInvalidDateRange некорректный диапазон дат
	ErrInvalidDateRange = errors.New("get_availability: invalid date range")

	// ErrRangeTooWide запрошенное окно больше допустимого
	ErrRangeTooWide = errors.New("get_availability: requested range is too wide")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("get_availability: invalid input")

	// ErrResourceNotFound ресурс не найден в реестре
	ErrResourceNotFound = errors.New("get_availability: resource not found")

	// ErrUnavailable хранилище недоступно
	ErrUnavailable = errors.New("get_availability: storage unavailable")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("get_availability: internal error")
)
