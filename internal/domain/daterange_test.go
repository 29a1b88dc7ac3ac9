package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "three nights",
			checkIn:  date(2024, 3, 15),
			checkOut: date(2024, 3, 18),
			want:     3,
		},
		{
			name:     "single night",
			checkIn:  date(2024, 3, 15),
			checkOut: date(2024, 3, 16),
			want:     1,
		},
		{
			name:     "across month boundary",
			checkIn:  date(2024, 2, 28),
			checkOut: date(2024, 3, 2),
			want:     3,
		},
		{
			name:     "partial day rounds up",
			checkIn:  time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2024, 3, 17, 10, 0, 0, 0, time.UTC),
			want:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NightsBetween(tt.checkIn, tt.checkOut))
		})
	}
}

func TestDateRangesOverlap(t *testing.T) {
	tests := []struct {
		name   string
		aStart time.Time
		aEnd   time.Time
		bStart time.Time
		bEnd   time.Time
		want   bool
	}{
		{
			name:   "full overlap",
			aStart: date(2024, 3, 10), aEnd: date(2024, 3, 15),
			bStart: date(2024, 3, 10), bEnd: date(2024, 3, 15),
			want: true,
		},
		{
			name:   "partial overlap",
			aStart: date(2024, 3, 10), aEnd: date(2024, 3, 15),
			bStart: date(2024, 3, 12), bEnd: date(2024, 3, 17),
			want: true,
		},
		{
			name:   "b inside a",
			aStart: date(2024, 3, 10), aEnd: date(2024, 3, 20),
			bStart: date(2024, 3, 12), bEnd: date(2024, 3, 14),
			want: true,
		},
		{
			// Выезд в день заезда следующего гостя — не конфликт
			name:   "back to back is not an overlap",
			aStart: date(2024, 3, 10), aEnd: date(2024, 3, 15),
			bStart: date(2024, 3, 15), bEnd: date(2024, 3, 20),
			want: false,
		},
		{
			name:   "back to back reversed",
			aStart: date(2024, 3, 15), aEnd: date(2024, 3, 20),
			bStart: date(2024, 3, 10), bEnd: date(2024, 3, 15),
			want: false,
		},
		{
			name:   "disjoint",
			aStart: date(2024, 3, 1), aEnd: date(2024, 3, 5),
			bStart: date(2024, 3, 10), bEnd: date(2024, 3, 15),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateRangesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tt.want, DateRangesOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestTruncateToDate(t *testing.T) {
	got := TruncateToDate(time.Date(2024, 3, 15, 18, 42, 7, 123, time.FixedZone("X", 3600)))
	assert.Equal(t, date(2024, 3, 15), got)
}
