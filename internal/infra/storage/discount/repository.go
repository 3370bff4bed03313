package discount

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/caribeazul/CAB-BookingService/internal/domain"
	"github.com/caribeazul/CAB-BookingService/pkg/dbmetrics"
	"github.com/caribeazul/CAB-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с промокодами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промокодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var codeColumns = []string{
	"id",
	"code",
	"percent",
	"active",
	"valid_from",
	"valid_until",
	"usage_limit",
	"usage_count",
	"created_at",
	"updated_at",
}

// GetByCode получает промокод по его коду
// Код нормализуется к верхнему регистру - коды нечувствительны к регистру
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.DiscountCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(codeColumns...).
		From("discount_codes").
		Where(squirrel.Eq{"code": normalizeCode(code)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanCode(executor.QueryRowContext(ctx, query, args...), "GetByCode")
}

// Create создает новый промокод
func (r *Repository) Create(ctx context.Context, code *domain.DiscountCode) (*domain.DiscountCode, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("discount_codes").
		Columns(
			"code",
			"percent",
			"active",
			"valid_from",
			"valid_until",
			"usage_limit",
		).
		Values(
			normalizeCode(code.Code),
			code.Percent,
			code.Active,
			code.ValidFrom,
			code.ValidUntil,
			code.UsageLimit,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&code.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		// 23505 - unique_violation на code
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	code.Code = normalizeCode(code.Code)
	code.CreatedAt = createdAt.Time
	code.UpdatedAt = updatedAt.Time

	return code, nil
}

// IncrementUsage атомарно увеличивает счётчик использований промокода
// Вызывается при подтверждении оплаты бронирования с этим кодом
func (r *Repository) IncrementUsage(ctx context.Context, code string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("discount_codes").
		Set("usage_count", squirrel.Expr("usage_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"code": normalizeCode(code)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCodeNotFound
	}

	return nil
}

func (r *Repository) scanCode(row *sql.Row, op string) (*domain.DiscountCode, error) {
	var code domain.DiscountCode
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&code.ID,
		&code.Code,
		&code.Percent,
		&code.Active,
		&code.ValidFrom,
		&code.ValidUntil,
		&code.UsageLimit,
		&code.UsageCount,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan code: %v", ErrScanRow, op, err)
	}

	code.CreatedAt = createdAt.Time
	code.UpdatedAt = updatedAt.Time

	return &code, nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
