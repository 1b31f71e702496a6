package providers

import (
	"errors"
	"testing"
)

func TestClassifyError(t *testing.T) {
	cases := map[string]ErrorType{
		"insufficient_quota":         ErrorQuota,
		"you have run out of credit": ErrorQuota,
		"429 too many requests":      ErrorRate,
		"rate limit exceeded":        ErrorRate,
		"request timeout":            ErrorTransient,
		"context deadline exceeded":  ErrorTransient,
		"connection refused":         ErrorTransient,
		"service unavailable":        ErrorTransient,
		"model is overloaded":        ErrorTransient,
		"invalid api key":            ErrorPermanent,
		"bad request":                ErrorPermanent,
	}
	for msg, want := range cases {
		if got := ClassifyError(errors.New(msg)); got != want {
			t.Fatalf("classify %q: got %s want %s", msg, got, want)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(errors.New("429 too many requests")) {
		t.Fatal("rate errors should be retryable")
	}
	if !IsRetryable(errors.New("connection reset")) {
		t.Fatal("transient errors should be retryable")
	}
	if IsRetryable(errors.New("insufficient_quota")) {
		t.Fatal("quota errors should not be retryable")
	}
	if IsRetryable(errors.New("invalid api key")) {
		t.Fatal("permanent errors should not be retryable")
	}
}
