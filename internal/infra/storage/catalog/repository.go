package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/pkg/dbmetrics"
	"github.com/m04kA/DiveOps-ReservationEngine/pkg/psqlbuilder"
)

var equipmentColumns = []string{
	"id",
	"name",
	"category",
	"quantity_in_stock",
	"rentable",
	"daily_rent_rate",
	"created_at",
	"updated_at",
}

var staffColumns = []string{
	"id",
	"name",
	"role",
	"availability",
	"certification_expiry",
	"created_at",
	"updated_at",
}

// Repository каталог ресурсов: снаряжение и сотрудники.
// Каталог заполняется внешним управлением, движок только читает и блокирует строки.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetEquipment получает позицию снаряжения по ID
func (r *Repository) GetEquipment(ctx context.Context, id string) (*domain.EquipmentItem, error) {
	return r.getEquipment(ctx, id, false)
}

// LockEquipment получает позицию снаряжения с блокировкой строки (FOR UPDATE).
// Должен вызываться внутри транзакции на запись: блокировка строки каталога
// сериализует все операции над этим снаряжением до конца транзакции.
func (r *Repository) LockEquipment(ctx context.Context, id string) (*domain.EquipmentItem, error) {
	return r.getEquipment(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getEquipment(ctx context.Context, id string, forUpdate bool) (*domain.EquipmentItem, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(equipmentColumns...).
		From("equipment").
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetEquipment - build select query: %v", ErrBuildQuery, err)
	}

	var item domain.EquipmentItem
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&item.Name,
		&item.Category,
		&item.QuantityInStock,
		&item.Rentable,
		&item.DailyRentRate,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEquipmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetEquipment - scan equipment: %w", ErrScanRow, err)
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time

	return &item, nil
}

// GetStaff получает сотрудника по ID
func (r *Repository) GetStaff(ctx context.Context, id string) (*domain.StaffMember, error) {
	return r.getStaff(ctx, id, false)
}

// LockStaff получает сотрудника с блокировкой строки (FOR UPDATE)
func (r *Repository) LockStaff(ctx context.Context, id string) (*domain.StaffMember, error) {
	return r.getStaff(ctx, id, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getStaff(ctx context.Context, id string, forUpdate bool) (*domain.StaffMember, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(staffColumns...).
		From("staff_members").
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaff - build select query: %v", ErrBuildQuery, err)
	}

	var member domain.StaffMember
	var certificationExpiry, createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&member.ID,
		&member.Name,
		&member.Role,
		&member.Availability,
		&certificationExpiry,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaff - scan staff member: %w", ErrScanRow, err)
	}

	if certificationExpiry.Valid {
		expiry := certificationExpiry.Time
		member.CertificationExpiry = &expiry
	}
	member.CreatedAt = createdAt.Time
	member.UpdatedAt = updatedAt.Time

	return &member, nil
}
