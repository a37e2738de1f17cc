package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/DiveOps-ReservationEngine/pkg/dbmetrics"
)

var (
	// ErrBeginTx возвращается, когда не удалось открыть транзакцию
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommit возвращается, когда не удалось зафиксировать транзакцию
	ErrCommit = errors.New("txmanager: failed to commit transaction")
)

// TransactionManager выполняет функции в транзакции, переданной через контекст.
// Репозитории получают транзакцию через dbmetrics.GetExecutor.
type TransactionManager struct {
	db          dbmetrics.TxBeginner
	lockTimeout time.Duration
}

// Option настройка менеджера
type Option func(*TransactionManager)

// WithLockTimeout ограничивает ожидание блокировок строк внутри транзакции (SET LOCAL lock_timeout)
func WithLockTimeout(d time.Duration) Option {
	return func(m *TransactionManager) {
		m.lockTimeout = d
	}
}

// NewTransactionManager создает менеджер транзакций
func NewTransactionManager(db dbmetrics.TxBeginner, opts ...Option) *TransactionManager {
	m := &TransactionManager{db: db}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DoSerializable выполняет fn в SERIALIZABLE транзакции.
// Используется для check-then-write операций резервирования.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции с единым снимком данных
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) (err error) {
	// Вложенный вызов переиспользует уже открытую транзакцию
	if dbmetrics.IsInTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if m.lockTimeout > 0 && !opts.ReadOnly {
		query := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", m.lockTimeout.Milliseconds())
		if _, err = tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("%w: set lock_timeout: %w", ErrBeginTx, err)
		}
	}

	if err = fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommit, err)
	}

	return nil
}

// NopManager выполняет fn без транзакции.
// Используется in-memory хранилищем, где атомарность обеспечивают блокировки по ключу ресурса.
type NopManager struct{}

func (NopManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (NopManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
