package async_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/creditkit/pkg/async"
)

func TestFire(t *testing.T) {
	t.Parallel()

	t.Run("runs the task", func(t *testing.T) {
		t.Parallel()
		done := make(chan struct{})

		async.Fire(context.Background(), nil, func(ctx context.Context) error {
			close(done)
			return nil
		})

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("side task never ran")
		}
	})

	t.Run("swallows errors", func(t *testing.T) {
		t.Parallel()
		done := make(chan struct{})

		assert.NotPanics(t, func() {
			async.Fire(context.Background(), nil, func(ctx context.Context) error {
				defer close(done)
				return errors.New("dispatch failed")
			})
		})
		<-done
	})

	t.Run("recovers panics", func(t *testing.T) {
		t.Parallel()
		var ran atomic.Bool
		done := make(chan struct{})

		async.Fire(context.Background(), nil, func(ctx context.Context) error {
			defer close(done)
			ran.Store(true)
			panic("boom")
		})

		<-done
		// Give the deferred recover a moment to execute.
		time.Sleep(10 * time.Millisecond)
		assert.True(t, ran.Load())
	})

	t.Run("nil task is a no-op", func(t *testing.T) {
		t.Parallel()
		assert.NotPanics(t, func() {
			async.Fire(context.Background(), nil, nil)
		})
	})
}
