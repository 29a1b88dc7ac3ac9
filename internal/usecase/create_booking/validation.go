package create_booking

import (
	"fmt"
	"strings"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Порядок проверок фиксирован: даты, гости, стоимость, контакт, ресурс.
func validateRequest(req *Request) error {
	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidDateRange)
	}

	// Строго раньше: бронирование на ноль ночей невалидно
	if !req.CheckIn.Before(req.CheckOut) {
		return fmt.Errorf("%w: checkIn %s must be before checkOut %s",
			ErrInvalidDateRange,
			req.CheckIn.Format(domain.DateFormat),
			req.CheckOut.Format(domain.DateFormat))
	}

	if req.Guests.Adults < domain.MinAdults {
		return fmt.Errorf("%w: at least %d adult is required", ErrInvalidGuestCount, domain.MinAdults)
	}
	if req.Guests.Children < 0 {
		return fmt.Errorf("%w: children must not be negative", ErrInvalidGuestCount)
	}

	if err := validatePricing(req.Pricing); err != nil {
		return err
	}

	if err := validateContact(req.GuestContact); err != nil {
		return err
	}

	if req.SpecialRequests != nil && len(*req.SpecialRequests) > domain.MaxSpecialRequestsLength {
		return fmt.Errorf("%w: special requests are too long", ErrInvalidInput)
	}

	if err := req.Resource.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// validatePricing проверяет неотрицательность всех составляющих стоимости.
// Итог не пересчитывается из компонентов: ценовая политика вне движка.
func validatePricing(p domain.Pricing) error {
	if p.BasePrice < 0 {
		return fmt.Errorf("%w: basePrice must not be negative", ErrInvalidPricing)
	}
	if p.Total < 0 {
		return fmt.Errorf("%w: total must not be negative", ErrInvalidPricing)
	}

	optional := map[string]*float64{
		"cleaningFee": p.CleaningFee,
		"serviceFee":  p.ServiceFee,
		"taxes":       p.Taxes,
	}
	for name, v := range optional {
		if v != nil && *v < 0 {
			return fmt.Errorf("%w: %s must not be negative", ErrInvalidPricing, name)
		}
	}

	return nil
}

// validateContact проверяет, что контакт гостя заполнен целиком
func validateContact(c domain.GuestContact) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidContact)
	}
	if strings.TrimSpace(c.Email) == "" || !strings.Contains(c.Email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidContact)
	}
	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidContact)
	}
	return nil
}

// normalizeContact приводит контакт к каноническому виду:
// обрезанные пробелы, email в нижнем регистре
func normalizeContact(c domain.GuestContact) domain.GuestContact {
	return domain.GuestContact{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.ToLower(strings.TrimSpace(c.Email)),
		Phone: strings.TrimSpace(c.Phone),
	}
}
