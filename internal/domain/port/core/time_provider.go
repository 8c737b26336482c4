package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations so countdowns and cache timestamps
// can be driven deterministically in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Sleep(d time.Duration)
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
