package scheduleconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/glowcare/clinic-booking/internal/domain"
	"github.com/glowcare/clinic-booking/pkg/dbmetrics"
	"github.com/glowcare/clinic-booking/pkg/psqlbuilder"
)

const windowColumns = "id, staff_id, start_hour, end_hour, minutes_per_pixel, column_scope, " +
	"slot_step_minutes, max_concurrent_bookings, advance_booking_days, min_booking_notice_minutes, " +
	"created_at, updated_at"

// Repository репозиторий для работы с окнами расписания
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория окон расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWindowForStaff получает окно расписания с учетом иерархии приоритетов:
// 1. Персональная конфигурация мастера (staff_id = staffID)
// 2. Конфигурация клиники по умолчанию (staff_id IS NULL)
func (r *Repository) GetWindowForStaff(ctx context.Context, staffID int64) (*domain.ScheduleWindow, error) {
	window, err := r.getByStaff(ctx, &staffID)
	if err == nil {
		return window, nil
	}
	if !errors.Is(err, ErrWindowNotFound) {
		return nil, err
	}

	// Персональной конфигурации нет - откатываемся на конфигурацию клиники
	return r.getByStaff(ctx, nil)
}

// Upsert создает или обновляет окно расписания мастера (или клиники при staffID=nil)
func (r *Repository) Upsert(ctx context.Context, window *domain.ScheduleWindow) (*domain.ScheduleWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_windows").
		Columns(
			"staff_id",
			"start_hour",
			"end_hour",
			"minutes_per_pixel",
			"column_scope",
			"slot_step_minutes",
			"max_concurrent_bookings",
			"advance_booking_days",
			"min_booking_notice_minutes",
		).
		Values(
			window.StaffID,
			window.StartHour,
			window.EndHour,
			window.MinutesPerPixel,
			window.ColumnScope,
			window.SlotStepMinutes,
			window.MaxConcurrentBookings,
			window.AdvanceBookingDays,
			window.MinBookingNoticeMinutes,
		).
		Suffix("ON CONFLICT ((COALESCE(staff_id, 0))) DO UPDATE SET " +
			"start_hour = EXCLUDED.start_hour, " +
			"end_hour = EXCLUDED.end_hour, " +
			"minutes_per_pixel = EXCLUDED.minutes_per_pixel, " +
			"column_scope = EXCLUDED.column_scope, " +
			"slot_step_minutes = EXCLUDED.slot_step_minutes, " +
			"max_concurrent_bookings = EXCLUDED.max_concurrent_bookings, " +
			"advance_booking_days = EXCLUDED.advance_booking_days, " +
			"min_booking_notice_minutes = EXCLUDED.min_booking_notice_minutes, " +
			"updated_at = NOW() " +
			"RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return window, nil
}

// EnsureClinicDefault создает конфигурацию клиники по умолчанию, если её ещё нет
// Существующая конфигурация не перезаписывается
func (r *Repository) EnsureClinicDefault(ctx context.Context, window *domain.ScheduleWindow) error {
	_, err := r.getByStaff(ctx, nil)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrWindowNotFound) {
		return err
	}

	window.StaffID = nil
	if _, err := r.Upsert(ctx, window); err != nil {
		return fmt.Errorf("EnsureClinicDefault: %w", err)
	}

	return nil
}

func (r *Repository) getByStaff(ctx context.Context, staffID *int64) (*domain.ScheduleWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(windowColumns).
		From("schedule_windows")

	if staffID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"staff_id": *staffID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByStaff - build select query: %v", ErrBuildQuery, err)
	}

	var window domain.ScheduleWindow
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&window.ID,
		&window.StaffID,
		&window.StartHour,
		&window.EndHour,
		&window.MinutesPerPixel,
		&window.ColumnScope,
		&window.SlotStepMinutes,
		&window.MaxConcurrentBookings,
		&window.AdvanceBookingDays,
		&window.MinBookingNoticeMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrWindowNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getByStaff - scan window: %v", ErrScanRow, err)
	}

	window.CreatedAt = createdAt.Time
	window.UpdatedAt = updatedAt.Time

	return &window, nil
}
