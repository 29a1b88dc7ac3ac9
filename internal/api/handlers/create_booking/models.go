package create_booking

import (
	"fmt"
	"time"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
	createBooking "github.com/tourmp/TMP-ReservationService/internal/usecase/create_booking"
)

// GuestsRequest состав гостей. total считается сервером,
// на входе не принимается.
type GuestsRequest struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// GuestContactRequest контактные данные гостя
type GuestContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PricingRequest стоимость, посчитанная вызывающей стороной
type PricingRequest struct {
	BasePrice   float64  `json:"basePrice"`
	CleaningFee *float64 `json:"cleaningFee,omitempty"`
	ServiceFee  *float64 `json:"serviceFee,omitempty"`
	Taxes       *float64 `json:"taxes,omitempty"`
	Total       float64  `json:"total"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ResourceType    string              `json:"resourceType"` // "homestay" | "guide"
	ResourceID      int64               `json:"resourceId"`
	CheckIn         string              `json:"checkIn"`  // "2024-03-15"
	CheckOut        string              `json:"checkOut"` // "2024-03-18"
	Guests          GuestsRequest       `json:"guests"`
	GuestContact    GuestContactRequest `json:"guestContact"`
	Pricing         PricingRequest      `json:"pricing"`
	SpecialRequests *string             `json:"specialRequests,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	resourceType, err := domain.ParseResourceType(r.ResourceType)
	if err != nil {
		return nil, err
	}

	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("parse checkIn: %w", err)
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("parse checkOut: %w", err)
	}

	return &createBooking.Request{
		Resource: domain.ResourceRef{Type: resourceType, ID: r.ResourceID},
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests: domain.Guests{
			Adults:   r.Guests.Adults,
			Children: r.Guests.Children,
		},
		GuestContact: domain.GuestContact{
			Name:  r.GuestContact.Name,
			Email: r.GuestContact.Email,
			Phone: r.GuestContact.Phone,
		},
		Pricing: domain.Pricing{
			BasePrice:   r.Pricing.BasePrice,
			CleaningFee: r.Pricing.CleaningFee,
			ServiceFee:  r.Pricing.ServiceFee,
			Taxes:       r.Pricing.Taxes,
			Total:       r.Pricing.Total,
		},
		SpecialRequests: r.SpecialRequests,
	}, nil
}
