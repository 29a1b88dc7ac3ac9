package get_availability

import (
	"github.com/tourmp/TMP-ReservationService/internal/domain"
	getAvailability "github.com/tourmp/TMP-ReservationService/internal/usecase/get_availability"
)

// DayResponse занятость одной даты
type DayResponse struct {
	Date      string `json:"date"` // "2024-03-15"
	Available bool   `json:"available"`
}

// BookedRangeResponse занятый диапазон [checkIn, checkOut)
type BookedRangeResponse struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// AvailabilityResponse календарь занятости ресурса
type AvailabilityResponse struct {
	ResourceType string                `json:"resourceType"`
	ResourceID   int64                 `json:"resourceId"`
	From         string                `json:"from"`
	To           string                `json:"to"`
	Days         []DayResponse         `json:"days"`
	BookedRanges []BookedRangeResponse `json:"bookedRanges"`
}

// fromUseCaseResponse конвертирует ответ use case в HTTP модель
func fromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		ResourceType: string(resp.Resource.Type),
		ResourceID:   resp.Resource.ID,
		From:         resp.From.Format(domain.DateFormat),
		To:           resp.To.Format(domain.DateFormat),
		Days:         make([]DayResponse, 0, len(resp.Days)),
		BookedRanges: make([]BookedRangeResponse, 0, len(resp.Booked)),
	}

	for _, d := range resp.Days {
		out.Days = append(out.Days, DayResponse{
			Date:      d.Date.Format(domain.DateFormat),
			Available: d.Available,
		})
	}
	for _, r := range resp.Booked {
		out.BookedRanges = append(out.BookedRanges, BookedRangeResponse{
			CheckIn:  r.CheckIn.Format(domain.DateFormat),
			CheckOut: r.CheckOut.Format(domain.DateFormat),
		})
	}

	return out
}
