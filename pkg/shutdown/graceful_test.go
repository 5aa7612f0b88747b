package shutdown_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studymate/pkg/shutdown"
)

func TestRun(t *testing.T) {
	t.Run("all hooks are executed", func(t *testing.T) {
		var calls atomic.Int32
		hook := func(context.Context) error {
			calls.Add(1)
			return nil
		}

		err := shutdown.Run(time.Second, hook, hook, hook)
		require.NoError(t, err)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("hook errors are joined", func(t *testing.T) {
		errA := errors.New("a")
		errB := errors.New("b")

		err := shutdown.Run(time.Second,
			func(context.Context) error { return errA },
			func(context.Context) error { return errB },
			func(context.Context) error { return nil },
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, errA)
		assert.ErrorIs(t, err, errB)
	})

	t.Run("slow hook hits the timeout", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)

		err := shutdown.Run(20*time.Millisecond, func(context.Context) error {
			<-release
			return nil
		})
		assert.ErrorIs(t, err, shutdown.ErrTimeout)
	})
}

func TestWait_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	err := shutdown.Wait(ctx, time.Second, func(context.Context) error {
		called.Store(true)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called.Load())
}
