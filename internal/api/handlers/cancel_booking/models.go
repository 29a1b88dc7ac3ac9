package cancel_booking

import (
	"github.com/tourmp/TMP-ReservationService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model.
// Причина отмены опциональна.
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		Reason: r.Reason,
	}
}
