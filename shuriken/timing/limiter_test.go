package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameDuration(t *testing.T) {
	assert.InDelta(t, 60.0, TargetFPS(), 0.0001)
	assert.InDelta(t, float64(16666666), float64(FrameDuration()), 1)
}

func TestLimiters(t *testing.T) {
	tests := []struct {
		name    string
		limiter Limiter
		minimum time.Duration
	}{
		{"no-op", NewNoOpLimiter(), 0},
		{"adaptive", NewAdaptiveLimiter(), 2 * FrameDuration()},
		{"ticker", NewTickerLimiter(), 2 * FrameDuration()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if ticker, ok := tt.limiter.(*TickerLimiter); ok {
				defer ticker.Stop()
			}
			tt.limiter.Reset()
			start := time.Now()
			for i := 0; i < 3; i++ {
				tt.limiter.WaitForNextFrame()
			}
			elapsed := time.Since(start)
			assert.GreaterOrEqual(t, elapsed, tt.minimum)
			assert.Less(t, elapsed, time.Second)
		})
	}
}
