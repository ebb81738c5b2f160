package domain

import (
	"testing"
	"time"
)

func TestOutboxMessageKey(t *testing.T) {
	if got := (OutboxMessage{ID: "evt-1", AggregateID: "order-1"}).Key(); got != "order-1" {
		t.Fatalf("expected aggregate id as key, got %q", got)
	}
	if got := (OutboxMessage{ID: "evt-1"}).Key(); got != "evt-1" {
		t.Fatalf("expected event id fallback, got %q", got)
	}
}

func TestOutboxStatsOldestAge(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		stats OutboxStats
		want  time.Duration
	}{
		{name: "empty backlog", stats: OutboxStats{OldestPendingAt: now.Add(-time.Hour)}, want: 0},
		{name: "no timestamp", stats: OutboxStats{PendingCount: 3}, want: 0},
		{name: "pending", stats: OutboxStats{PendingCount: 2, OldestPendingAt: now.Add(-90 * time.Second)}, want: 90 * time.Second},
		{name: "clock skew", stats: OutboxStats{PendingCount: 1, OldestPendingAt: now.Add(time.Minute)}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stats.OldestAge(now); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
