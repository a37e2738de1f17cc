package keylock

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestLocker_MutualExclusionPerKey(t *testing.T) {
	l := New(0)

	var inside int32
	var maxInside int32
	var g errgroup.Group

	for i := 0; i < 50; i++ {
		g.Go(func() error {
			release, err := l.Acquire(context.Background(), "equipment:tank")
			if err != nil {
				return err
			}
			defer release()

			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(100 * time.Microsecond)
			atomic.AddInt32(&inside, -1)
			return nil
		})
	}

	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, l.Len())
}

func TestLocker_DifferentKeysDoNotBlock(t *testing.T) {
	l := New(50 * time.Millisecond)

	release, err := l.Acquire(context.Background(), "staff:a")
	require.NoError(t, err)
	defer release()

	other, err := l.Acquire(context.Background(), "staff:b")
	require.NoError(t, err)
	other()
}

func TestLocker_TimesOut(t *testing.T) {
	l := New(20 * time.Millisecond)

	release, err := l.Acquire(context.Background(), "equipment:bcd")
	require.NoError(t, err)
	defer release()

	start := time.Now()
	_, err = l.Acquire(context.Background(), "equipment:bcd")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout))
	assert.Less(t, time.Since(start), time.Second)
}

func TestLocker_ContextCancelled(t *testing.T) {
	l := New(time.Second)

	release, err := l.Acquire(context.Background(), "staff:a")
	require.NoError(t, err)
	defer release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = l.Acquire(ctx, "staff:a")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, ErrTimeout))
}

func TestLocker_ReleaseIsIdempotent(t *testing.T) {
	l := New(20 * time.Millisecond)

	release, err := l.Acquire(context.Background(), "k")
	require.NoError(t, err)
	release()
	release()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		r, err := l.Acquire(context.Background(), "k")
		if assert.NoError(t, err) {
			r()
		}
	}()
	wg.Wait()
	assert.Equal(t, 0, l.Len())
}
