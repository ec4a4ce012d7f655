package handler

import "time"

// RateLimiter gates an action to happen at most frequency times a second, measured on the clock of
// the frames passed to it.
type RateLimiter struct {
	interval time.Duration
	last     time.Duration
}

// NewRateLimiter returns a limiter allowing frequency actions per second. A frequency of zero or less
// never allows anything.
func NewRateLimiter(frequency float64) *RateLimiter {
	l := &RateLimiter{}
	if frequency > 0 {
		l.interval = time.Duration(float64(time.Second) / frequency)
	}
	return l
}

// Ready reports whether the action may happen at now, and if so records now as the time it last
// happened.
func (l *RateLimiter) Ready(now time.Duration) bool {
	if l.interval <= 0 || now-l.last < l.interval {
		return false
	}
	l.last = now
	return true
}

// Interval returns the minimum time between two actions.
func (l *RateLimiter) Interval() time.Duration {
	return l.interval
}
