package database

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestNewPool_InvalidConnString(t *testing.T) {
	_, err := NewPool(context.Background(), "://not-a-dsn", 5, time.Minute, time.Hour)
	if err == nil {
		t.Fatal("expected error for malformed connection string")
	}
	if !strings.Contains(err.Error(), ErrMsgParseConnString) {
		t.Errorf("expected parse error, got: %v", err)
	}
}

func TestMinConnsFor(t *testing.T) {
	tests := []struct {
		name     string
		maxConns int
		expected int32
	}{
		{"Quarter of a large pool", 20, 5},
		{"Floor applies to small pools", 4, 2},
		{"Never exceeds max", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := minConnsFor(tt.maxConns); got != tt.expected {
				t.Errorf("minConnsFor(%d) = %d, expected %d", tt.maxConns, got, tt.expected)
			}
		})
	}
}
