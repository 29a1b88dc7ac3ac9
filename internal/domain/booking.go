package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// PaymentStatus represents the payment state of a booking.
// It is an independent axis: booking status transitions never drive it,
// refunds are handled by an external payment process.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentRefunded  PaymentStatus = "refunded"
	PaymentFailed    PaymentStatus = "failed"
)

// Guests describes the party size of a booking.
// Total is always Adults + Children, computed by WithTotal.
type Guests struct {
	Adults   int
	Children int
	Total    int
}

// WithTotal returns a copy with Total recomputed from Adults and Children.
// Caller-supplied Total is never trusted.
func (g Guests) WithTotal() Guests {
	g.Total = g.Adults + g.Children
	return g
}

// GuestContact contact details of the booking guest. All fields are required.
type GuestContact struct {
	Name  string
	Email string
	Phone string
}

// Pricing is the money breakdown of a booking. The engine does not recompute
// Total from the components — pricing policy lives outside — it only
// validates non-negativity.
type Pricing struct {
	BasePrice   float64
	CleaningFee *float64
	ServiceFee  *float64
	Taxes       *float64
	Total       float64
}

// Booking represents a reservation of a date range against a resource
type Booking struct {
	ID            int64
	BookingNumber string
	Resource      ResourceRef

	// Denormalized display name of the resource, captured at creation time.
	// Not re-synced if the resource is later renamed.
	ResourceTitle *string

	CheckIn  time.Time // date only, UTC midnight
	CheckOut time.Time // date only, UTC midnight, exclusive
	Nights   int

	Guests          Guests
	GuestContact    GuestContact
	SpecialRequests *string
	Pricing         Pricing

	Status        BookingStatus
	PaymentStatus PaymentStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks its date range for new reservations
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if no further status transitions are permitted
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the booking can be confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPending
}

// CanBeCompleted returns true if the booking can be completed
func (b *Booking) CanBeCompleted() bool {
	return b.Status == StatusConfirmed
}

// BookingsFilter filters booking listings
type BookingsFilter struct {
	Status   *BookingStatus // optional status filter
	Resource *ResourceRef   // optional resource filter
	Page     int            // 1-based page number
	Limit    int            // page size
}

// Offset returns the SQL offset for the filter's page/limit
func (f BookingsFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.Limit
}
