package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
	"github.com/caribeazul/CAB-BookingService/pkg/dbmetrics"
	"github.com/caribeazul/CAB-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"rental_type",
	"pickup",
	"destination",
	"booking_date",
	"start_time",
	"duration_hours",
	"jet_skis",
	"boats",
	"people",
	"water_sports",
	"subtotal",
	"tax",
	"discount_amount",
	"total",
	"discount_code",
	"resident_discount",
	"customer_name",
	"customer_email",
	"customer_phone",
	"notes",
	"payment_intent_id",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Иначе выполняет обычный запрос без транзакции.
//
// При создании с проверкой доступности флота вызов обязан идти внутри
// сериализуемой транзакции вместе с GetByDate - иначе возможен race condition
// на последние свободные единицы.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	sports, err := encodeWaterSports(booking.WaterSports)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"rental_type",
			"pickup",
			"destination",
			"booking_date",
			"start_time",
			"duration_hours",
			"jet_skis",
			"boats",
			"people",
			"water_sports",
			"subtotal",
			"tax",
			"discount_amount",
			"total",
			"discount_code",
			"resident_discount",
			"customer_name",
			"customer_email",
			"customer_phone",
			"notes",
			"status",
		).
		Values(
			booking.ID,
			booking.RentalType,
			booking.Pickup,
			destinationValue(booking.Destination),
			booking.BookingDate,
			booking.StartTime,
			booking.DurationHours,
			booking.JetSkis,
			booking.Boats,
			booking.People,
			sports,
			booking.Subtotal,
			booking.Tax,
			booking.DiscountAmount,
			booking.Total,
			booking.DiscountCode,
			booking.ResidentDiscount,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.Notes,
			booking.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetActiveByDate получает активные бронирования на дату, отсортированные
// по времени начала. Активные - те, что удерживают единицы флота.
//
// Если вызов идёт внутри транзакции, строки блокируются через FOR UPDATE -
// это используется при создании бронирования для проверки доступности флота.
func (r *Repository) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	inactive := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactive[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.NotEq{"status": inactive}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetWithFilter получает бронирования с гибкой фильтрацией для оператора
//
// Поддерживает фильтрацию по:
// - Периоду (StartDate, EndDate) - опционально
// - Точке выдачи (Pickup) - опционально
// - Статусу (Status) - опционально
// - Email клиента (CustomerEmail) - опционально
// - Включению неактивных бронирований (IncludeInactive)
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings")

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": *filter.EndDate})
	}

	// Фильтрация по точке выдачи
	if filter.Pickup != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"pickup": *filter.Pickup})
	}

	// Фильтрация по email клиента
	if filter.CustomerEmail != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_email": *filter.CustomerEmail})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Если не указан конкретный статус и не нужны неактивные - исключаем их
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	// Для конкретной даты сортируем по времени начала, иначе сначала новые
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// SetPaymentIntent привязывает платёжный intent к бронированию
func (r *Repository) SetPaymentIntent(ctx context.Context, id string, paymentIntentID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("payment_intent_id", paymentIntentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPaymentIntent - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetPaymentIntent - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetPaymentIntent - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id string, status domain.BookingStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func encodeWaterSports(sports map[domain.WaterSport]int) ([]byte, error) {
	if len(sports) == 0 {
		return []byte("{}"), nil
	}
	data, err := json.Marshal(sports)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncodeSports, err)
	}
	return data, nil
}

func destinationValue(d *domain.Destination) *string {
	if d == nil {
		return nil
	}
	s := string(*d)
	return &s
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanBooking сканирует одну строку в доменную модель
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var destination sql.NullString
	var sportsData []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.RentalType,
		&booking.Pickup,
		&destination,
		&booking.BookingDate,
		&booking.StartTime,
		&booking.DurationHours,
		&booking.JetSkis,
		&booking.Boats,
		&booking.People,
		&sportsData,
		&booking.Subtotal,
		&booking.Tax,
		&booking.DiscountAmount,
		&booking.Total,
		&booking.DiscountCode,
		&booking.ResidentDiscount,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.Notes,
		&booking.PaymentIntentID,
		&booking.Status,
		&booking.CancellationReason,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if destination.Valid {
		d := domain.Destination(destination.String)
		booking.Destination = &d
	}

	if len(sportsData) > 0 {
		if err := json.Unmarshal(sportsData, &booking.WaterSports); err != nil {
			return nil, err
		}
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
