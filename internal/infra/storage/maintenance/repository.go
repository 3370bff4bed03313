package maintenance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/caribeazul/CAB-BookingService/pkg/dbmetrics"
	"github.com/caribeazul/CAB-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с датами технического обслуживания
// В эти даты весь флот недоступен и бронирования не принимаются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория дат обслуживания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Exists проверяет, назначено ли обслуживание на дату
func (r *Repository) Exists(ctx context.Context, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("maintenance_dates").
		Where(squirrel.Eq{"maintenance_date": date}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Exists - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Exists - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// ListFrom возвращает даты обслуживания начиная с указанной даты
func (r *Repository) ListFrom(ctx context.Context, from time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("maintenance_date").
		From("maintenance_dates").
		Where(squirrel.GtOrEq{"maintenance_date": from}).
		OrderBy("maintenance_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListFrom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListFrom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: ListFrom - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListFrom - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// Add назначает обслуживание на дату (повторное добавление - no-op)
func (r *Repository) Add(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("maintenance_dates").
		Columns("maintenance_date").
		Values(date).
		Suffix("ON CONFLICT (maintenance_date) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Add - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Add - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// Remove снимает обслуживание с даты
func (r *Repository) Remove(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("maintenance_dates").
		Where(squirrel.Eq{"maintenance_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Remove - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrDateNotFound
	}

	return nil
}
