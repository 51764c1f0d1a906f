package treatment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/glowcare/clinic-booking/internal/domain"
	"github.com/glowcare/clinic-booking/pkg/dbmetrics"
	"github.com/glowcare/clinic-booking/pkg/psqlbuilder"
)

const treatmentColumns = "id, name, category, price, duration_minutes, commission_rate, active, created_at, updated_at"

// Repository репозиторий для работы с каталогом процедур
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория процедур
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую процедуру в каталоге
func (r *Repository) Create(ctx context.Context, treatment *domain.Treatment) (*domain.Treatment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("treatments").
		Columns(
			"name",
			"category",
			"price",
			"duration_minutes",
			"commission_rate",
			"active",
		).
		Values(
			treatment.Name,
			treatment.Category,
			treatment.Price,
			treatment.DurationMinutes,
			treatment.CommissionRate,
			treatment.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&treatment.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	treatment.CreatedAt = createdAt.Time
	treatment.UpdatedAt = updatedAt.Time

	return treatment, nil
}

// GetByID получает процедуру по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Treatment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(treatmentColumns).
		From("treatments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	treatment, err := scanTreatment(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrTreatmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan treatment: %v", ErrScanRow, err)
	}

	return treatment, nil
}

// List возвращает процедуры каталога
// При activeOnly=true отдаются только доступные для записи процедуры
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Treatment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(treatmentColumns).
		From("treatments").
		OrderBy("category ASC, name ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	treatments := make([]*domain.Treatment, 0)
	for rows.Next() {
		treatment, err := scanTreatment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		treatments = append(treatments, treatment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return treatments, nil
}

func scanTreatment(scan func(dest ...interface{}) error) (*domain.Treatment, error) {
	var treatment domain.Treatment
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&treatment.ID,
		&treatment.Name,
		&treatment.Category,
		&treatment.Price,
		&treatment.DurationMinutes,
		&treatment.CommissionRate,
		&treatment.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	treatment.CreatedAt = createdAt.Time
	treatment.UpdatedAt = updatedAt.Time

	return &treatment, nil
}
