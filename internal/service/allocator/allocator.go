package allocator

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/DiveOps-ReservationEngine/internal/domain"
)

// Allocator выполняет проверку и запись по одному ресурсу как единый атомарный шаг:
// блокировка по ключу ресурса в процессе + сериализуемая транзакция в БД.
// Операции над разными ресурсами друг друга не блокируют.
type Allocator struct {
	locker    KeyLocker
	txManager TransactionManager
	metrics   LockMetrics
	logger    Logger
}

// NewAllocator создает новый экземпляр Allocator.
// metrics может быть nil.
func NewAllocator(locker KeyLocker, txManager TransactionManager, metrics LockMetrics, logger Logger) *Allocator {
	return &Allocator{
		locker:    locker,
		txManager: txManager,
		metrics:   metrics,
		logger:    logger,
	}
}

// Do захватывает ресурс key и выполняет fn в сериализуемой транзакции.
// Ошибка fn возвращается без изменений, откат транзакции выполняет менеджер.
func (a *Allocator) Do(ctx context.Context, key domain.ResourceKey, fn func(ctx context.Context) error) error {
	started := time.Now()
	release, err := a.locker.Acquire(ctx, key.String())
	waited := time.Since(started)

	if a.metrics != nil {
		a.metrics.ObserveLockWait(string(key.Kind), waited, err == nil)
	}
	if err != nil {
		a.logger.Warn("Allocator: failed to lock resource=%s after %s: %v", key, waited, err)
		return fmt.Errorf("%w: resource=%s: %w", ErrResourceBusy, key, err)
	}
	defer release()

	return a.txManager.DoSerializable(ctx, fn)
}
