package get_availability

import (
	"fmt"
	"time"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
)

// maxWindowDays максимальная ширина окна календаря (один сезон)
const maxWindowDays = 92

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidDateRange)
	}

	if !req.From.Before(req.To) {
		return fmt.Errorf("%w: from %s must be before to %s",
			ErrInvalidDateRange,
			req.From.Format(domain.DateFormat),
			req.To.Format(domain.DateFormat))
	}

	if req.To.Sub(req.From) > maxWindowDays*24*time.Hour {
		return fmt.Errorf("%w: window must not exceed %d days", ErrRangeTooWide, maxWindowDays)
	}

	if err := req.Resource.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}
