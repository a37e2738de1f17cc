// Package keylock предоставляет взаимоисключающие блокировки по строковому ключу
// с ограниченным временем ожидания. Блокировки разных ключей независимы.
package keylock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// ErrTimeout возвращается, когда блокировку не удалось получить за отведённое время
var ErrTimeout = errors.New("keylock: timed out waiting for lock")

type entry struct {
	sem  *semaphore.Weighted
	refs int
}

// Locker набор блокировок по ключу. Запись о ключе удаляется, когда её никто не держит и не ждёт.
type Locker struct {
	mu          sync.Mutex
	entries     map[string]*entry
	waitTimeout time.Duration
}

// New создает Locker. waitTimeout <= 0 - ожидание ограничено только контекстом.
func New(waitTimeout time.Duration) *Locker {
	return &Locker{
		entries:     make(map[string]*entry),
		waitTimeout: waitTimeout,
	}
}

// Acquire захватывает блокировку ключа и возвращает функцию освобождения.
// Повторный вызов функции освобождения безопасен.
func (l *Locker) Acquire(ctx context.Context, key string) (func(), error) {
	e := l.ref(key)

	waitCtx := ctx
	if l.waitTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, l.waitTimeout)
		defer cancel()
	}

	if err := e.sem.Acquire(waitCtx, 1); err != nil {
		l.unref(key)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("keylock: key=%s: %w", key, ctxErr)
		}
		return nil, fmt.Errorf("%w: key=%s", ErrTimeout, key)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			e.sem.Release(1)
			l.unref(key)
		})
	}, nil
}

// Len количество ключей, которые сейчас удерживаются или ожидаются
func (l *Locker) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Locker) ref(key string) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		e = &entry{sem: semaphore.NewWeighted(1)}
		l.entries[key] = e
	}
	e.refs++
	return e
}

func (l *Locker) unref(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok {
		return
	}
	e.refs--
	if e.refs <= 0 {
		delete(l.entries, key)
	}
}
