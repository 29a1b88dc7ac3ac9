package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestsWithTotal(t *testing.T) {
	g := Guests{Adults: 2, Children: 1, Total: 99}.WithTotal()
	assert.Equal(t, 3, g.Total)

	g = Guests{Adults: 1}.WithTotal()
	assert.Equal(t, 1, g.Total)
}

func TestBookingStatusPredicates(t *testing.T) {
	tests := []struct {
		status       BookingStatus
		active       bool
		terminal     bool
		canCancel    bool
		canConfirm   bool
		canComplete  bool
	}{
		{StatusPending, true, false, true, true, false},
		{StatusConfirmed, true, false, true, false, true},
		{StatusCancelled, false, true, false, false, false},
		{StatusCompleted, false, true, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.active, b.IsActive())
			assert.Equal(t, tt.terminal, b.IsTerminal())
			assert.Equal(t, tt.canCancel, b.CanBeCancelled())
			assert.Equal(t, tt.canConfirm, b.CanBeConfirmed())
			assert.Equal(t, tt.canComplete, b.CanBeCompleted())
		})
	}
}

func TestParseResourceType(t *testing.T) {
	rt, err := ParseResourceType("homestay")
	require.NoError(t, err)
	assert.Equal(t, ResourceHomestay, rt)

	rt, err = ParseResourceType("guide")
	require.NoError(t, err)
	assert.Equal(t, ResourceGuide, rt)

	_, err = ParseResourceType("hotel")
	assert.Error(t, err)
}

func TestResourceRefValidate(t *testing.T) {
	assert.NoError(t, ResourceRef{Type: ResourceHomestay, ID: 1}.Validate())
	assert.Error(t, ResourceRef{Type: ResourceHomestay, ID: 0}.Validate())
	assert.Error(t, ResourceRef{Type: "hotel", ID: 1}.Validate())
	assert.Equal(t, "guide/7", ResourceRef{Type: ResourceGuide, ID: 7}.String())
}

func TestBookingsFilterOffset(t *testing.T) {
	assert.Equal(t, 0, BookingsFilter{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, BookingsFilter{Page: 3, Limit: 20}.Offset())
	// Нулевая страница трактуется как первая
	assert.Equal(t, 0, BookingsFilter{Page: 0, Limit: 20}.Offset())
}
