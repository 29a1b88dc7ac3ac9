package get_availability

import (
	"time"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
)

// buildDays строит позаневную занятость окна [from, to).
// Дата занята, если хотя бы одно активное бронирование накрывает её:
// checkIn <= date < checkOut. День выезда свободен — интервалы полуоткрытые.
func buildDays(from, to time.Time, bookings []*domain.Booking) []Day {
	days := make([]Day, 0, int(to.Sub(from).Hours()/24))

	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		next := d.AddDate(0, 0, 1)

		available := true
		for _, b := range bookings {
			if !b.IsActive() {
				continue
			}
			if domain.DateRangesOverlap(b.CheckIn, b.CheckOut, d, next) {
				available = false
				break
			}
		}

		days = append(days, Day{Date: d, Available: available})
	}

	return days
}

// mergeBookedRanges сливает занятые диапазоны активных бронирований,
// обрезая их по окну [from, to). Смежные диапазоны (выезд одного —
// заезд следующего) склеиваются в один.
// Бронирования ожидаются отсортированными по check_in.
func mergeBookedRanges(from, to time.Time, bookings []*domain.Booking) []BookedRange {
	merged := make([]BookedRange, 0)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}

		start := b.CheckIn
		if start.Before(from) {
			start = from
		}
		end := b.CheckOut
		if end.After(to) {
			end = to
		}
		if !start.Before(end) {
			continue
		}

		if n := len(merged); n > 0 && !merged[n-1].CheckOut.Before(start) {
			if end.After(merged[n-1].CheckOut) {
				merged[n-1].CheckOut = end
			}
			continue
		}

		merged = append(merged, BookedRange{CheckIn: start, CheckOut: end})
	}

	return merged
}
