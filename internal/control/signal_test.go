package control

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Signal(t *testing.T) {
	t.Parallel()

	signal := NewSignal()
	assert.Equal(t, Run, signal.Get())

	state, changed := signal.Watch()
	assert.Equal(t, Run, state)

	ok := signal.Set(Pause)
	assert.True(t, ok)
	select {
	case <-changed:
	default:
		t.Fatal("changed channel not closed")
	}
	assert.Equal(t, Pause, signal.Get())

	// setting the same state does not notify
	_, changed = signal.Watch()
	ok = signal.Set(Pause)
	assert.True(t, ok)
	select {
	case <-changed:
		t.Fatal("changed channel closed")
	default:
	}

	ok = signal.Set(Stop)
	assert.True(t, ok)
	ok = signal.Set(Run)
	assert.False(t, ok)
	assert.Equal(t, Stop, signal.Get())
}

func Test_Signal_WaitFor(t *testing.T) {
	t.Parallel()

	signal := NewSignal()
	signal.Set(Pause)

	done := make(chan State)
	go func() {
		state, err := signal.WaitFor(context.Background(), Run, Stop)
		assert.NoError(t, err)
		done <- state
	}()

	time.Sleep(10 * time.Millisecond)
	signal.Set(Run)
	assert.Equal(t, Run, <-done)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	state, err := signal.WaitFor(ctx, Stop)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Run, state)
}
