package catalog

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
	"github.com/m04kA/DiveOps-ReservationEngine/pkg/dbmetrics"
	"github.com/m04kA/DiveOps-ReservationEngine/pkg/pgerr"
	"github.com/m04kA/DiveOps-ReservationEngine/pkg/txmanager"
)

func newMockDB(t *testing.T) (*dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return dbmetrics.Wrap(db, nil), mock
}

func equipmentRows(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(equipmentColumns).
		AddRow("tank-12l", "Dive Tank 12L", "tanks", 5, true, 15.0, now, now)
}

func staffRows(now time.Time, expiry interface{}) *sqlmock.Rows {
	return sqlmock.NewRows(staffColumns).
		AddRow("instr-a", "Instructor A", "instructor", "available", expiry, now, now)
}

func TestLockEquipment_ForUpdateInsideTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	tm := txmanager.NewTransactionManager(db)
	now := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`^SELECT .+ FROM equipment WHERE id = \$1 FOR UPDATE$`).
		WithArgs("tank-12l").
		WillReturnRows(equipmentRows(now))
	mock.ExpectCommit()

	var item *domain.EquipmentItem
	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		var err error
		item, err = repo.LockEquipment(ctx, "tank-12l")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 5, item.QuantityInStock)
	assert.True(t, item.Rentable)
	assert.Equal(t, now, item.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockEquipment_NoRowLockOutsideTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`^SELECT .+ FROM equipment WHERE id = \$1$`).
		WithArgs("tank-12l").
		WillReturnRows(equipmentRows(time.Now()))

	_, err := repo.LockEquipment(context.Background(), "tank-12l")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEquipment_Errors(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`FROM equipment WHERE id = \$1$`).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(equipmentColumns))
	mock.ExpectQuery(`FROM equipment WHERE id = \$1$`).
		WithArgs("tank-12l").
		WillReturnError(&pq.Error{Code: "40001"})

	_, err := repo.GetEquipment(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrEquipmentNotFound)

	_, err = repo.GetEquipment(context.Background(), "tank-12l")
	assert.ErrorIs(t, err, ErrScanRow)
	assert.True(t, pgerr.IsRetryable(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockStaff_ForUpdateInsideTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)
	tm := txmanager.NewTransactionManager(db)
	now := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	expiry := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`^SELECT .+ FROM staff_members WHERE id = \$1 FOR UPDATE$`).
		WithArgs("instr-a").
		WillReturnRows(staffRows(now, expiry))
	mock.ExpectCommit()

	var member *domain.StaffMember
	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		var err error
		member, err = repo.LockStaff(ctx, "instr-a")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleInstructor, member.Role)
	assert.Equal(t, domain.StaffAvailable, member.Availability)
	require.NotNil(t, member.CertificationExpiry)
	assert.Equal(t, expiry, *member.CertificationExpiry)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStaff_NullExpiryAndNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`FROM staff_members WHERE id = \$1$`).
		WithArgs("instr-a").
		WillReturnRows(staffRows(time.Now(), nil))
	mock.ExpectQuery(`FROM staff_members WHERE id = \$1$`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	member, err := repo.GetStaff(context.Background(), "instr-a")
	require.NoError(t, err)
	assert.Nil(t, member.CertificationExpiry)

	_, err = repo.GetStaff(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrStaffNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
