package event

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirefen/GloamBot_Go/internal/testing/leaktest"
)

// mockBus is a test double for event.Bus
type mockBus struct {
	mu         sync.Mutex
	calls      []Event
	shouldFail func(attempt int) bool
}

func (m *mockBus) Publish(ctx context.Context, event Event) error {
	m.mu.Lock()
	m.calls = append(m.calls, event)
	callCount := len(m.calls)
	m.mu.Unlock()

	if m.shouldFail != nil && m.shouldFail(callCount) {
		return errors.New("mock publish error")
	}
	return nil
}

func (m *mockBus) Subscribe(eventType Type, handler Handler) {
	// Not used in these tests
}

func (m *mockBus) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func TestResilientPublisher_SuccessfulPublish(t *testing.T) {
	bus := &mockBus{}
	rp := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries:     3,
		RetryDelay:     time.Millisecond,
		DeadLetterPath: t.TempDir() + "/deadletter.jsonl",
	})

	err := rp.Publish(context.Background(), Event{Type: Type("test_event")})
	require.NoError(t, err)
	assert.Equal(t, 1, bus.CallCount(), "Event should be published once")
}

func TestResilientPublisher_RetriesUntilSuccess(t *testing.T) {
	bus := &mockBus{
		shouldFail: func(attempt int) bool { return attempt < 3 },
	}
	rp := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries:     5,
		RetryDelay:     time.Millisecond,
		DeadLetterPath: t.TempDir() + "/deadletter.jsonl",
	})

	// First attempt fails; retry loop runs in the background
	err := rp.Publish(context.Background(), Event{Type: Type("test_event")})
	require.NoError(t, err, "caller is decoupled from retries")

	assert.Eventually(t, func() bool {
		return bus.CallCount() >= 3
	}, time.Second, 5*time.Millisecond, "expected retries until success")
}

func TestResilientPublisher_ExhaustedRetriesWriteDeadLetter(t *testing.T) {
	deadLetterPath := t.TempDir() + "/deadletter.jsonl"
	bus := &mockBus{
		shouldFail: func(attempt int) bool { return true },
	}
	rp := NewResilientPublisher(bus, ResilientConfig{
		MaxRetries:     2,
		RetryDelay:     time.Millisecond,
		DeadLetterPath: deadLetterPath,
	})

	// The retry goroutine must terminate once the event hits the dead letter
	leaktest.CheckNoGoroutineLeak(t, func() {
		err := rp.Publish(context.Background(), Event{Type: Type("test_event")})
		require.NoError(t, err)

		assert.Eventually(t, func() bool {
			_, statErr := os.Stat(deadLetterPath)
			return statErr == nil
		}, time.Second, 5*time.Millisecond, "expected dead letter file")
	})

	// Initial attempt plus two retries
	assert.Equal(t, 3, bus.CallCount())
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 16*time.Second, CalculateRetryDelay(base, 4))
}
