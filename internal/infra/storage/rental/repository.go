package rental

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
	"equipment_id",
	"booking_id",
	"quantity",
	"window_start",
	"window_end",
	"status",
	"returned_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий аренд снаряжения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аренд
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую аренду.
// Проверка доступности выполняется вызывающим кодом в той же транзакции.
func (r *Repository) Create(ctx context.Context, rental *domain.RentalAssignment) (*domain.RentalAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rental_assignments").
		Columns(
			"id",
			"equipment_id",
			"booking_id",
			"quantity",
			"window_start",
			"window_end",
			"status",
		).
		Values(
			rental.ID,
			rental.EquipmentID,
			rental.BookingID,
			rental.Quantity,
			rental.Window.Start,
			rental.Window.End,
			rental.Status,
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
			return nil, fmt.Errorf("%w: Create - id=%s", ErrDuplicateID, rental.ID)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	rental.CreatedAt = createdAt.Time
	rental.UpdatedAt = updatedAt.Time

	return rental, nil
}

// GetByID получает аренду по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.RentalAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("rental_assignments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rental, err := scanRental(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssignmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rental: %w", ErrScanRow, err)
	}

	return rental, nil
}

// ListActiveByEquipment получает активные аренды снаряжения
func (r *Repository) ListActiveByEquipment(ctx context.Context, equipmentID string) ([]*domain.RentalAssignment, error) {
	return r.list(ctx, "ListActiveByEquipment", squirrel.Eq{
		"equipment_id": equipmentID,
		"status":       domain.StatusActive,
	})
}

// ListByBooking получает аренды бронирования.
// Без IncludeHistory возвращаются только активные.
func (r *Repository) ListByBooking(ctx context.Context, filter domain.AssignmentsFilter) ([]*domain.RentalAssignment, error) {
	where := squirrel.Eq{"booking_id": filter.BookingID}
	if !filter.IncludeHistory {
		where["status"] = domain.StatusActive
	}
	return r.list(ctx, "ListByBooking", where)
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Eq) ([]*domain.RentalAssignment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("rental_assignments").
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

	rentals := make([]*domain.RentalAssignment, 0)
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		rentals = append(rentals, rental)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return rentals, nil
}

// MarkReturned переводит аренду active -> returned.
// Обновление условное по статусу, поэтому повторный возврат получает ErrNotActive.
func (r *Repository) MarkReturned(ctx context.Context, id string, returnedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rental_assignments").
		Set("status", domain.StatusReturned).
		Set("returned_at", returnedAt).
		Set("updated_at", returnedAt).
		Where(squirrel.Eq{"id": id, "status": domain.StatusActive}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkReturned - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkReturned - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkReturned - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Различаем отсутствующую аренду и уже возвращённую
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

func scanRental(row rowScanner) (*domain.RentalAssignment, error) {
	var rental domain.RentalAssignment
	var returnedAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rental.ID,
		&rental.EquipmentID,
		&rental.BookingID,
		&rental.Quantity,
		&rental.Window.Start,
		&rental.Window.End,
		&rental.Status,
		&returnedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if returnedAt.Valid {
		t := returnedAt.Time
		rental.ReturnedAt = &t
	}
	rental.CreatedAt = createdAt.Time
	rental.UpdatedAt = updatedAt.Time

	return &rental, nil
}
