package retry

import (
	"context"
	"errors"
	"testing"
	"time"
)

func zeroDelay() Policy {
	return Policy{MaxAttempts: 5, BaseDelay: time.Microsecond, Multiplier: 2}
}

func TestDoSucceedsFirstAttempt(t *testing.T) {
	calls := 0
	err := zeroDelay().Do(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestDoRetriesUntilSuccess(t *testing.T) {
	calls := 0
	err := zeroDelay().Do(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	}, func(error) bool { return true })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestDoExhaustsBudget(t *testing.T) {
	calls := 0
	wantErr := errors.New("still broken")
	err := zeroDelay().Do(context.Background(), func(ctx context.Context) error {
		calls++
		return wantErr
	}, func(error) bool { return true })
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want last error", err)
	}
	if calls != 5 {
		t.Fatalf("calls = %d, want 5", calls)
	}
}

func TestDoStopsOnNonRetryable(t *testing.T) {
	calls := 0
	err := zeroDelay().Do(context.Background(), func(ctx context.Context) error {
		calls++
		return errors.New("permanent")
	}, func(error) bool { return false })
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestDoHonorsCancellation(t *testing.T) {
	p := Policy{MaxAttempts: 5, BaseDelay: time.Hour, Multiplier: 2}
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	go func() {
		// Cancel while Do is waiting out the first backoff.
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	err := p.Do(ctx, func(ctx context.Context) error {
		calls++
		return errors.New("transient")
	}, func(error) bool { return true })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestDelayDoubles(t *testing.T) {
	p := Policy{MaxAttempts: 5, BaseDelay: 5 * time.Second, Multiplier: 2}
	cases := map[int]time.Duration{
		1: 0,
		2: 5 * time.Second,
		3: 10 * time.Second,
		4: 20 * time.Second,
		5: 40 * time.Second,
	}
	for attempt, want := range cases {
		if got := p.Delay(attempt); got != want {
			t.Fatalf("delay before attempt %d: got %s want %s", attempt, got, want)
		}
	}
}
