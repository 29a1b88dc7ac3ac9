package booking

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/tourmp/TMP-ReservationService/internal/domain"
	"github.com/tourmp/TMP-ReservationService/pkg/dbmetrics"
	"github.com/tourmp/TMP-ReservationService/pkg/psqlbuilder"
)

// Имена констрейнтов из миграций. По ним различаем коллизию номера
// бронирования и конфликт дат.
const (
	constraintBookingNumber = "bookings_booking_number_key"
	constraintNoDateOverlap = "bookings_no_date_overlap"
)

var bookingColumns = []string{
	"id",
	"booking_number",
	"resource_type",
	"resource_id",
	"resource_title",
	"check_in",
	"check_out",
	"nights",
	"adults",
	"children",
	"guests_total",
	"guest_name",
	"guest_email",
	"guest_phone",
	"special_requests",
	"base_price",
	"cleaning_fee",
	"service_fee",
	"taxes",
	"total_price",
	"status",
	"payment_status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Конфликты на уровне БД транслируются в сентинельные ошибки:
//   - уникальность booking_number -> ErrDuplicateBookingNumber (вызывающий
//     код генерирует новый номер и повторяет)
//   - exclusion-констрейнт по пересечению дат -> ErrDateRangeConflict
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_number",
			"resource_type",
			"resource_id",
			"resource_title",
			"check_in",
			"check_out",
			"nights",
			"adults",
			"children",
			"guests_total",
			"guest_name",
			"guest_email",
			"guest_phone",
			"special_requests",
			"base_price",
			"cleaning_fee",
			"service_fee",
			"taxes",
			"total_price",
			"status",
			"payment_status",
		).
		Values(
			b.BookingNumber,
			b.Resource.Type,
			b.Resource.ID,
			b.ResourceTitle,
			b.CheckIn,
			b.CheckOut,
			b.Nights,
			b.Guests.Adults,
			b.Guests.Children,
			b.Guests.Total,
			b.GuestContact.Name,
			b.GuestContact.Email,
			b.GuestContact.Phone,
			b.SpecialRequests,
			b.Pricing.BasePrice,
			b.Pricing.CleaningFee,
			b.Pricing.ServiceFee,
			b.Pricing.Taxes,
			b.Pricing.Total,
			b.Status,
			b.PaymentStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		return nil, wrapExecError("Create - execute insert", err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByNumber получает бронирование по внешнему номеру
func (r *Repository) GetByNumber(ctx context.Context, number string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"booking_number": number}, "GetByNumber")
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	b, err := scanBooking(row)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return b, nil
}

// HasOverlap проверяет, пересекается ли диапазон [checkIn, checkOut)
// хотя бы с одним активным бронированием того же ресурса.
// Интервалы полуоткрытые: выезд в день чужого заезда — не пересечение,
// поэтому сравнения строгие (check_in < :checkOut AND check_out > :checkIn).
//
// excludeID исключает из проверки собственное бронирование — нужен операциям,
// которые перепроверяют занятость относительно своего прежнего состояния;
// при создании передается nil.
//
// Внутри транзакции найденные строки блокируются (FOR UPDATE).
func (r *Repository) HasOverlap(ctx context.Context, resource domain.ResourceRef, checkIn, checkOut time.Time, excludeID *int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{
			"resource_type": resource.Type,
			"resource_id":   resource.ID,
		}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
		Where(squirrel.Lt{"check_in": checkOut}).
		Where(squirrel.Gt{"check_out": checkIn}).
		Limit(1)

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasOverlap - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, wrapExecError("HasOverlap - execute query", err)
	}

	return true, nil
}

// ListActiveForRange возвращает активные бронирования ресурса,
// пересекающиеся с диапазоном [from, to). Используется календарем занятости.
func (r *Repository) ListActiveForRange(ctx context.Context, resource domain.ResourceRef, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{
			"resource_type": resource.Type,
			"resource_id":   resource.ID,
		}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
		Where(squirrel.Lt{"check_in": to}).
		Where(squirrel.Gt{"check_out": from}).
		OrderBy("check_in ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveForRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapExecError("ListActiveForRange - execute query", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// List получает бронирования с фильтрацией и пагинацией.
// Возвращает страницу и общее количество записей под фильтром.
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	applyFilter := func(b squirrel.SelectBuilder) squirrel.SelectBuilder {
		if filter.Status != nil {
			b = b.Where(squirrel.Eq{"status": *filter.Status})
		}
		if filter.Resource != nil {
			b = b.Where(squirrel.Eq{
				"resource_type": filter.Resource.Type,
				"resource_id":   filter.Resource.ID,
			})
		}
		return b
	}

	countQuery, countArgs, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("bookings")).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, wrapExecError("List - execute count", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultPageLimit
	}

	query, args, err := applyFilter(psqlbuilder.Select(bookingColumns...).From("bookings")).
		OrderBy("check_in DESC, id DESC").
		Limit(uint64(limit)).
		Offset(uint64(filter.Offset())).
		ToSql()

	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, wrapExecError("List - execute query", err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

// Cancel отменяет бронирование: статус, причина и отметка времени
// выставляются одним запросом. Это update, не delete — запись остается
// доступной для истории.
//
// Легальность перехода обеспечивает сам запрос: условие по статусу стоит
// в WHERE, поэтому конкурентный переход, закоммиченный между чтением
// вызывающего кода и этим update, не будет перезаписан. Ноль затронутых
// строк у существующей записи означает ErrStatusConflict.
func (r *Repository) Cancel(ctx context.Context, id int64, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execGuarded(ctx, executor, id, query, args, "Cancel")
}

// UpdateStatus переводит бронирование в статус status, если текущий статус
// входит в allowedFrom. Проверка — часть самого update (WHERE по статусу),
// так что переход атомарен относительно конкурентных переходов.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, allowedFrom []domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": statusStrings(allowedFrom)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execGuarded(ctx, executor, id, query, args, "UpdateStatus")
}

// execGuarded выполняет update, в WHERE которого зашита проверка статуса.
// Ноль затронутых строк — либо записи нет, либо её статус не прошел
// условие; различаем повторным чтением.
func (r *Repository) execGuarded(ctx context.Context, executor DBExecutor, id int64, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapExecError(op+" - execute update", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		exists, err := r.rowExists(ctx, executor, id)
		if err != nil {
			return fmt.Errorf("%w: %s - check row existence: %v", ErrExecQuery, op, err)
		}
		if !exists {
			return ErrBookingNotFound
		}
		return ErrStatusConflict
	}

	return nil
}

// rowExists проверяет наличие записи по id тем же исполнителем
func (r *Repository) rowExists(ctx context.Context, executor DBExecutor, id int64) (bool, error) {
	query, args, err := psqlbuilder.Select("1").
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return false, err
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// scanBooking сканирует одну строку в доменную модель
// statusStrings приводит статусы к строкам для подстановки в IN-условие
func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func scanBooking(row squirrel.RowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.BookingNumber,
		&b.Resource.Type,
		&b.Resource.ID,
		&b.ResourceTitle,
		&b.CheckIn,
		&b.CheckOut,
		&b.Nights,
		&b.Guests.Adults,
		&b.Guests.Children,
		&b.Guests.Total,
		&b.GuestContact.Name,
		&b.GuestContact.Email,
		&b.GuestContact.Phone,
		&b.SpecialRequests,
		&b.Pricing.BasePrice,
		&b.Pricing.CleaningFee,
		&b.Pricing.ServiceFee,
		&b.Pricing.Taxes,
		&b.Pricing.Total,
		&b.Status,
		&b.PaymentStatus,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// mapConstraintError транслирует нарушения констрейнтов PostgreSQL
// в сентинельные ошибки репозитория. Возвращает nil, если ошибка
// не относится к известным констрейнтам.
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch pqErr.Code {
	case "23505": // unique_violation
		if pqErr.Constraint == constraintBookingNumber {
			return ErrDuplicateBookingNumber
		}
	case "23P01": // exclusion_violation
		if pqErr.Constraint == constraintNoDateOverlap {
			return ErrDateRangeConflict
		}
	}

	return nil
}

// wrapExecError оборачивает ошибку выполнения запроса, отличая
// недоступность БД от прочих сбоев.
// Конфликт сериализации (40001) возвращается как есть: менеджер
// транзакций распознает его по коду и повторяет транзакцию.
func wrapExecError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "40001" {
		return err
	}
	if isConnectionError(err) {
		return fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrExecQuery, op, err)
}

// isConnectionError проверяет, вызвана ли ошибка потерей соединения с БД
func isConnectionError(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		// Класс 08 — connection exception
		return strings.HasPrefix(string(pqErr.Code), "08")
	}
	return false
}
