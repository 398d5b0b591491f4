package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{30, "30m"},
		{59, "59m"},
		{60, "1h"},
		{125, "2h 5m"},
		{240, "4h"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDuration(tt.minutes))
	}
}

func TestFixed2(t *testing.T) {
	assert.Equal(t, "1050.00", Fixed2(1000*1.05))
	assert.Equal(t, "970.00", Fixed2(1000*0.97))
	assert.Equal(t, "0.50", Fixed2(0.5))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.67, Round2(1.6666))
	assert.Equal(t, 0.0, Round2(0))
}

func TestSleepHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := Sleep(ctx, time.Minute)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPrettyDateUsesWIB(t *testing.T) {
	ts := time.Date(2026, 10, 18, 7, 5, 0, 0, time.UTC)
	assert.Equal(t, "18 Oct 2026 14:05 WIB", PrettyDate(ts))
}
