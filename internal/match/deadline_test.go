package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeadlineStatusSentinels(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		deadline  string
		wantLabel string
	}{
		{"", "Varies"},
		{"Varies", "Varies"},
		{"Nomination Only", "Nomination Only"},
	}
	for _, tt := range tests {
		info := DeadlineStatus(tt.deadline, now)
		assert.Equal(t, tt.wantLabel, info.Label)
		assert.Equal(t, DeadlineNeutral, info.ColorClass)
	}
}

func TestDeadlineStatusUnparseablePassesThrough(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	info := DeadlineStatus("Spring 2026", now)
	assert.Equal(t, "Spring 2026", info.Label)
	assert.Equal(t, DeadlineNeutral, info.ColorClass)
}

func TestDeadlineStatusBuckets(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		deadline  string
		wantLabel string
		wantColor string
	}{
		{"expired yesterday", "2026-02-28", "Expired", DeadlineUrgent},
		// Midnight of the deadline day is behind noon "now", but the ceiling
		// keeps it at zero days rather than expired.
		{"later today", "2026-03-01", "0d left", DeadlineUrgent},
		{"one week out", "2026-03-08", "7d left", DeadlineUrgent},
		{"urgent boundary", "2026-03-15", "14d left", DeadlineUrgent},
		{"just past urgent", "2026-03-16", "15d left", DeadlineWarning},
		{"warning boundary", "2026-04-30", "60d left", DeadlineWarning},
		{"past warning", "2026-05-01", "May 1", DeadlineNormal},
		{"far future", "2026-12-01", "Dec 1", DeadlineNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := DeadlineStatus(tt.deadline, now)
			assert.Equal(t, tt.wantLabel, info.Label)
			assert.Equal(t, tt.wantColor, info.ColorClass)
		})
	}
}
