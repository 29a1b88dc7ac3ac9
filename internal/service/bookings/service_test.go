package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
	bookingRepo "github.com/tourmp/TMP-ReservationService/internal/infra/storage/booking"
	"github.com/tourmp/TMP-ReservationService/internal/service/bookings/models"
	"github.com/tourmp/TMP-ReservationService/pkg/ptr"
)

// fakeRepo хранит бронирования в памяти и повторяет контракт репозитория
type fakeRepo struct {
	bookings map[int64]*domain.Booking

	// счетчики вызовов для проверок
	cancelCalls       int
	updateStatusCalls int

	// подменяемая ошибка: если задана, возвращается из всех методов
	err error

	// хуки перед записью: имитируют конкурентный коммит,
	// случившийся между чтением сервиса и его update-ом
	beforeCancel       func()
	beforeUpdateStatus func()
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	r := &fakeRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *fakeRepo) GetByNumber(_ context.Context, number string) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, b := range r.bookings {
		if b.BookingNumber == number {
			clone := *b
			return &clone, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (r *fakeRepo) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	var items []*domain.Booking
	for _, b := range r.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.Resource != nil && b.Resource != *filter.Resource {
			continue
		}
		clone := *b
		items = append(items, &clone)
	}
	return items, int64(len(items)), nil
}

func (r *fakeRepo) Cancel(_ context.Context, id int64, reason *string) error {
	if r.err != nil {
		return r.err
	}
	if r.beforeCancel != nil {
		r.beforeCancel()
	}
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if !statusIn(b.Status, domain.ActiveStatuses) {
		return bookingRepo.ErrStatusConflict
	}
	r.cancelCalls++
	now := time.Now().UTC()
	b.Status = domain.StatusCancelled
	b.CancellationReason = reason
	b.CancelledAt = &now
	return nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus, allowedFrom []domain.BookingStatus) error {
	if r.err != nil {
		return r.err
	}
	if r.beforeUpdateStatus != nil {
		r.beforeUpdateStatus()
	}
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if !statusIn(b.Status, allowedFrom) {
		return bookingRepo.ErrStatusConflict
	}
	r.updateStatusCalls++
	b.Status = status
	return nil
}

func statusIn(s domain.BookingStatus, set []domain.BookingStatus) bool {
	for _, candidate := range set {
		if s == candidate {
			return true
		}
	}
	return false
}

var _ BookingRepository = (*fakeRepo)(nil)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		BookingNumber: "BK-20240315-A1B2C3",
		Resource:      domain.ResourceRef{Type: domain.ResourceHomestay, ID: 7},
		CheckIn:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC),
		Nights:        3,
		Guests:        domain.Guests{Adults: 2, Children: 1, Total: 3},
		GuestContact:  domain.GuestContact{Name: "Анна", Email: "anna@example.com", Phone: "+79990001122"},
		Pricing:       domain.Pricing{BasePrice: 9000, Total: 9000},
		Status:        status,
		PaymentStatus: domain.PaymentPending,
		CreatedAt:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(newFakeRepo(testBooking(1, domain.StatusPending)), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "BK-20240315-A1B2C3", resp.BookingNumber)
	assert.Equal(t, "homestay", resp.ResourceType)
	assert.Equal(t, "2024-03-15", resp.CheckIn)
	assert.Equal(t, "2024-03-18", resp.CheckOut)
	assert.Equal(t, 3, resp.Nights)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_GetByID_Unavailable(t *testing.T) {
	repo := newFakeRepo()
	repo.err = bookingRepo.ErrUnavailable
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestService_GetByNumber(t *testing.T) {
	svc := NewService(newFakeRepo(testBooking(1, domain.StatusConfirmed)), nopLogger{})

	resp, err := svc.GetByNumber(context.Background(), "BK-20240315-A1B2C3")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	_, err = svc.GetByNumber(context.Background(), "BK-20240315-ZZZZZZ")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_List_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("paused"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List_ResourceFilterRequiresBothFields(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{
		ResourceType: ptr.Ptr("homestay"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_List(t *testing.T) {
	confirmed := testBooking(2, domain.StatusConfirmed)
	svc := NewService(newFakeRepo(testBooking(1, domain.StatusPending), confirmed), nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{
		Status: ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
	assert.Equal(t, int64(1), resp.TotalCount)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, domain.DefaultPageLimit, resp.Limit)
}

func TestService_Cancel_Pending(t *testing.T) {
	repo := newFakeRepo(testBooking(1, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		Reason: ptr.Ptr("смена планов"),
	})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "смена планов", *resp.CancellationReason)
	assert.NotNil(t, resp.CancelledAt)
	assert.Equal(t, 1, repo.cancelCalls)
}

func TestService_Cancel_Confirmed(t *testing.T) {
	svc := NewService(newFakeRepo(testBooking(1, domain.StatusConfirmed)), nopLogger{})

	resp, err := svc.Cancel(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Nil(t, resp.CancellationReason)
}

// Повторная отмена не проходит и не перезаписывает cancelledAt первой отмены
func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	repo := newFakeRepo(testBooking(1, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	first, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		Reason: ptr.Ptr("первая причина"),
	})
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		Reason: ptr.Ptr("вторая причина"),
	})
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, 1, repo.cancelCalls)

	// запись не изменилась
	current, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, *first.CancelledAt, *current.CancelledAt)
	assert.Equal(t, "первая причина", *current.CancellationReason)
}

func TestService_Cancel_Completed(t *testing.T) {
	svc := NewService(newFakeRepo(testBooking(1, domain.StatusCompleted)), nopLogger{})

	_, err := svc.Cancel(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestService_Cancel_ReasonTooLong(t *testing.T) {
	repo := newFakeRepo(testBooking(1, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	long := make([]byte, domain.MaxCancellationReasonLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		Reason: ptr.Ptr(string(long)),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 0, repo.cancelCalls)
}

// Конкурентное завершение между чтением и записью отмены: update,
// ограниченный активными статусами, не затрагивает запись, и отмена
// возвращает ErrIllegalTransition вместо перезаписи completed.
func TestService_Cancel_ConcurrentCompleteWins(t *testing.T) {
	repo := newFakeRepo(testBooking(1, domain.StatusConfirmed))
	repo.beforeCancel = func() {
		repo.bookings[1].Status = domain.StatusCompleted
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Cancel(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, 0, repo.cancelCalls)
	assert.Equal(t, domain.StatusCompleted, repo.bookings[1].Status)
	assert.Nil(t, repo.bookings[1].CancelledAt)
}

// Аналогичное окно при подтверждении: бронирование отменено после чтения,
// но до записи — подтверждение не воскрешает его.
func TestService_Confirm_ConcurrentCancelWins(t *testing.T) {
	repo := newFakeRepo(testBooking(1, domain.StatusPending))
	repo.beforeUpdateStatus = func() {
		repo.bookings[1].Status = domain.StatusCancelled
	}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Confirm(context.Background(), 1)
	assert.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, 0, repo.updateStatusCalls)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
}

func TestService_Confirm(t *testing.T) {
	svc := NewService(newFakeRepo(testBooking(1, domain.StatusPending)), nopLogger{})

	resp, err := svc.Confirm(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestService_Confirm_IllegalFrom(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusConfirmed,
		domain.StatusCancelled,
		domain.StatusCompleted,
	} {
		repo := newFakeRepo(testBooking(1, status))
		svc := NewService(repo, nopLogger{})

		_, err := svc.Confirm(context.Background(), 1)
		assert.ErrorIs(t, err, ErrIllegalTransition, "from %s", status)
		assert.Equal(t, 0, repo.updateStatusCalls)
	}
}

func TestService_Complete(t *testing.T) {
	svc := NewService(newFakeRepo(testBooking(1, domain.StatusConfirmed)), nopLogger{})

	resp, err := svc.Complete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
}

func TestService_Complete_IllegalFrom(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusCancelled,
		domain.StatusCompleted,
	} {
		repo := newFakeRepo(testBooking(1, status))
		svc := NewService(repo, nopLogger{})

		_, err := svc.Complete(context.Background(), 1)
		assert.ErrorIs(t, err, ErrIllegalTransition, "from %s", status)
	}
}

// Перевод статуса не трогает платежную ось
func TestService_TransitionsKeepPaymentStatus(t *testing.T) {
	b := testBooking(1, domain.StatusPending)
	b.PaymentStatus = domain.PaymentCompleted
	svc := NewService(newFakeRepo(b), nopLogger{})

	resp, err := svc.Confirm(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.PaymentStatus)

	resp, err = svc.Cancel(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.PaymentStatus)
}
