package models

import (
	"errors"
	"time"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Status       *string `json:"status,omitempty"`
	ResourceType *string `json:"resourceType,omitempty"`
	ResourceID   *int64  `json:"resourceId,omitempty"`
	Page         int     `json:"page"`
	Limit        int     `json:"limit"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Page:  r.Page,
		Limit: r.Limit,
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultPageLimit
	}
	if filter.Limit > domain.MaxPageLimit {
		filter.Limit = domain.MaxPageLimit
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	// Фильтр по ресурсу валиден только целиком: тип вместе с ID
	if r.ResourceType != nil || r.ResourceID != nil {
		if r.ResourceType == nil || r.ResourceID == nil {
			return filter, errors.New("resourceType and resourceId must be supplied together")
		}
		resourceType, err := domain.ParseResourceType(*r.ResourceType)
		if err != nil {
			return filter, err
		}
		ref := domain.ResourceRef{Type: resourceType, ID: *r.ResourceID}
		if err := ref.Validate(); err != nil {
			return filter, err
		}
		filter.Resource = &ref
	}

	return filter, nil
}

// Response модели

// GuestsResponse состав гостей
type GuestsResponse struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Total    int `json:"total"`
}

// GuestContactResponse контактные данные гостя
type GuestContactResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PricingResponse детализация стоимости
type PricingResponse struct {
	BasePrice   float64  `json:"basePrice"`
	CleaningFee *float64 `json:"cleaningFee,omitempty"`
	ServiceFee  *float64 `json:"serviceFee,omitempty"`
	Taxes       *float64 `json:"taxes,omitempty"`
	Total       float64  `json:"total"`
}

// BookingResponse ответ с данными бронирования.
// Имена JSON-полей — внешний контракт API, менять нельзя.
type BookingResponse struct {
	ID                    int64                `json:"id"`
	BookingNumber         string               `json:"bookingNumber"`
	ResourceType          string               `json:"resourceType"`
	ResourceID            int64                `json:"resourceId"`
	ResourceTitleSnapshot *string              `json:"resourceTitleSnapshot,omitempty"`
	CheckIn               string               `json:"checkIn"`  // "2024-03-15"
	CheckOut              string               `json:"checkOut"` // "2024-03-18"
	Nights                int                  `json:"nights"`
	Guests                GuestsResponse       `json:"guests"`
	GuestContact          GuestContactResponse `json:"guestContact"`
	SpecialRequests       *string              `json:"specialRequests,omitempty"`
	Pricing               PricingResponse      `json:"pricing"`
	Status                string               `json:"status"`
	PaymentStatus         string               `json:"paymentStatus"`
	CancellationReason    *string              `json:"cancellationReason,omitempty"`
	CancelledAt           *string              `json:"cancelledAt,omitempty"` // ISO 8601
	CreatedAt             time.Time            `json:"createdAt"`
	UpdatedAt             time.Time            `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings   []BookingResponse `json:"bookings"`
	TotalCount int64             `json:"totalCount"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                    b.ID,
		BookingNumber:         b.BookingNumber,
		ResourceType:          string(b.Resource.Type),
		ResourceID:            b.Resource.ID,
		ResourceTitleSnapshot: b.ResourceTitle,
		CheckIn:               b.CheckIn.Format(domain.DateFormat),
		CheckOut:              b.CheckOut.Format(domain.DateFormat),
		Nights:                b.Nights,
		Guests: GuestsResponse{
			Adults:   b.Guests.Adults,
			Children: b.Guests.Children,
			Total:    b.Guests.Total,
		},
		GuestContact: GuestContactResponse{
			Name:  b.GuestContact.Name,
			Email: b.GuestContact.Email,
			Phone: b.GuestContact.Phone,
		},
		SpecialRequests: b.SpecialRequests,
		Pricing: PricingResponse{
			BasePrice:   b.Pricing.BasePrice,
			CleaningFee: b.Pricing.CleaningFee,
			ServiceFee:  b.Pricing.ServiceFee,
			Taxes:       b.Pricing.Taxes,
			Total:       b.Pricing.Total,
		},
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, total int64, page, limit int) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings:   make([]BookingResponse, 0, len(bookings)),
		TotalCount: total,
		Page:       page,
		Limit:      limit,
	}

	for _, b := range bookings {
		if bookingResp := FromDomainBooking(b); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	switch s {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted:
		return s, nil
	default:
		return "", ErrInvalidStatus
	}
}
