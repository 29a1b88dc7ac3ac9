package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
	"github.com/tourmp/TMP-ReservationService/pkg/ptr"
)

func validRequest() *Request {
	return &Request{
		Resource: domain.ResourceRef{Type: domain.ResourceHomestay, ID: 7},
		CheckIn:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
		Guests:   domain.Guests{Adults: 2, Children: 1},
		GuestContact: domain.GuestContact{
			Name:  "Анна Петрова",
			Email: "anna@example.com",
			Phone: "+79990001122",
		},
		Pricing: domain.Pricing{BasePrice: 9000, Total: 9000},
	}
}

func TestValidateRequest_OK(t *testing.T) {
	assert.NoError(t, validateRequest(validRequest()))
}

func TestValidateRequest_Dates(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
	}{
		{"zero checkIn", time.Time{}, time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)},
		{"zero checkOut", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), time.Time{}},
		{"equal dates", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"checkOut before checkIn", time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.CheckIn = tt.checkIn
			req.CheckOut = tt.checkOut
			assert.ErrorIs(t, validateRequest(req), ErrInvalidDateRange)
		})
	}
}

func TestValidateRequest_Guests(t *testing.T) {
	req := validRequest()
	req.Guests = domain.Guests{Adults: 0, Children: 2}
	assert.ErrorIs(t, validateRequest(req), ErrInvalidGuestCount)

	req = validRequest()
	req.Guests = domain.Guests{Adults: 1, Children: -1}
	assert.ErrorIs(t, validateRequest(req), ErrInvalidGuestCount)
}

func TestValidateRequest_Pricing(t *testing.T) {
	req := validRequest()
	req.Pricing.BasePrice = -1
	assert.ErrorIs(t, validateRequest(req), ErrInvalidPricing)

	req = validRequest()
	req.Pricing.Total = -0.01
	assert.ErrorIs(t, validateRequest(req), ErrInvalidPricing)

	req = validRequest()
	req.Pricing.CleaningFee = ptr.Ptr(-500.0)
	assert.ErrorIs(t, validateRequest(req), ErrInvalidPricing)

	// итог не обязан сходиться с компонентами — это не ошибка
	req = validRequest()
	req.Pricing.ServiceFee = ptr.Ptr(100.0)
	req.Pricing.Total = 1 // заведомо не BasePrice+ServiceFee
	assert.NoError(t, validateRequest(req))
}

func TestValidateRequest_Contact(t *testing.T) {
	req := validRequest()
	req.GuestContact.Name = "   "
	assert.ErrorIs(t, validateRequest(req), ErrInvalidContact)

	req = validRequest()
	req.GuestContact.Email = "not-an-email"
	assert.ErrorIs(t, validateRequest(req), ErrInvalidContact)

	req = validRequest()
	req.GuestContact.Phone = ""
	assert.ErrorIs(t, validateRequest(req), ErrInvalidContact)
}

func TestValidateRequest_SpecialRequestsTooLong(t *testing.T) {
	req := validRequest()
	req.SpecialRequests = ptr.Ptr(strings.Repeat("a", domain.MaxSpecialRequestsLength+1))
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestValidateRequest_Resource(t *testing.T) {
	req := validRequest()
	req.Resource = domain.ResourceRef{Type: "camper", ID: 1}
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)

	req = validRequest()
	req.Resource = domain.ResourceRef{Type: domain.ResourceGuide, ID: 0}
	assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
}

func TestNormalizeContact(t *testing.T) {
	got := normalizeContact(domain.GuestContact{
		Name:  "  Анна Петрова  ",
		Email: " Anna@Example.COM ",
		Phone: " +79990001122 ",
	})

	assert.Equal(t, "Анна Петрова", got.Name)
	assert.Equal(t, "anna@example.com", got.Email)
	assert.Equal(t, "+79990001122", got.Phone)
}
