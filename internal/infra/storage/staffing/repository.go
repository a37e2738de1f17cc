package staffing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/pkg/dbmetrics"
	"github.com/m04kA/DiveOps-ReservationEngine/pkg/pgerr"
	"github.com/m04kA/DiveOps-ReservationEngine/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"staff_id",
	"booking_id",
	"window_start",
	"window_end",
	"status",
	"released_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий назначений сотрудников на бронирования
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория назначений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое назначение.
// Проверка пересечений выполняется вызывающим кодом в той же транзакции.
func (r *Repository) Create(ctx context.Context, assignment *domain.StaffAssignment) (*domain.StaffAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_assignments").
		Columns(
			"id",
			"staff_id",
			"booking_id",
			"window_start",
			"window_end",
			"status",
		).
		Values(
			assignment.ID,
			assignment.StaffID,
			assignment.BookingID,
			assignment.Window.Start,
			assignment.Window.End,
			assignment.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if pgerr.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: Create - id=%s", ErrDuplicateID, assignment.ID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	assignment.CreatedAt = createdAt.Time
	assignment.UpdatedAt = updatedAt.Time

	return assignment, nil
}

// GetByID получает назначение по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.StaffAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("staff_assignments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	assignment, err := scanAssignment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan assignment: %w", ErrScanRow, err)
	}

	return assignment, nil
}

// ListActiveByStaff получает активные назначения сотрудника
func (r *Repository) ListActiveByStaff(ctx context.Context, staffID string) ([]*domain.StaffAssignment, error) {
	return r.list(ctx, "ListActiveByStaff", squirrel.Eq{
		"staff_id": staffID,
		"status":   domain.StatusActive,
	})
}

// ListByBooking получает назначения сотрудников на бронирование
func (r *Repository) ListByBooking(ctx context.Context, filter domain.AssignmentsFilter) ([]*domain.StaffAssignment, error) {
	where := squirrel.Eq{"booking_id": filter.BookingID}
	if !filter.IncludeHistory {
		where["status"] = domain.StatusActive
	}
	return r.list(ctx, "ListByBooking", where)
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Eq) ([]*domain.StaffAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("staff_assignments").
		Where(where).
		OrderBy("window_start ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	assignments := make([]*domain.StaffAssignment, 0)
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return assignments, nil
}

// MarkReleased переводит назначение active -> released
func (r *Repository) MarkReleased(ctx context.Context, id string, releasedAt time.Time) error {
	return r.updateActive(ctx, "MarkReleased", id,
		psqlbuilder.Update("staff_assignments").
			Set("status", domain.StatusReleased).
			Set("released_at", releasedAt).
			Set("updated_at", releasedAt),
	)
}

// UpdateWindow переносит активное назначение на новое окно без снятия
func (r *Repository) UpdateWindow(ctx context.Context, id string, window domain.Window, updatedAt time.Time) error {
	return r.updateActive(ctx, "UpdateWindow", id,
		psqlbuilder.Update("staff_assignments").
			Set("window_start", window.Start).
			Set("window_end", window.End).
			Set("updated_at", updatedAt),
	)
}

// updateActive применяет обновление только к активному назначению
func (r *Repository) updateActive(ctx context.Context, op, id string, update squirrel.UpdateBuilder) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := update.
		Where(squirrel.Eq{"id": id, "status": domain.StatusActive}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrNotActive
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAssignment(row rowScanner) (*domain.StaffAssignment, error) {
	var assignment domain.StaffAssignment
	var releasedAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&assignment.ID,
		&assignment.StaffID,
		&assignment.BookingID,
		&assignment.Window.Start,
		&assignment.Window.End,
		&assignment.Status,
		&releasedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if releasedAt.Valid {
		t := releasedAt.Time
		assignment.ReleasedAt = &t
	}
	assignment.CreatedAt = createdAt.Time
	assignment.UpdatedAt = updatedAt.Time

	return &assignment, nil
}
