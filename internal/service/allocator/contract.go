package allocator

import (
	"context"
	"time"
)

// KeyLocker блокировки по ключу ресурса
type KeyLocker interface {
	Acquire(ctx context.Context, key string) (func(), error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// LockMetrics метрики ожидания блокировок
type LockMetrics interface {
	ObserveLockWait(resource string, wait time.Duration, acquired bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
