// Package backoff computes the delay inserted between retry attempts.
package backoff

import (
	"math/rand"
	"time"
)

// Strategy computes the wait before the next attempt. The attempt index is
// zero-based: attempt 0 is the wait after the first failed call.
type Strategy interface {
	Delay(attempt int, base, max time.Duration, multiplier, jitter float64) time.Duration
}

// Exponential grows the delay as base * multiplier^attempt, capped at max,
// with an optional uniform jitter fraction added on top. With jitter 0 the
// sequence is deterministic.
type Exponential struct{}

func (Exponential) Delay(attempt int, base, max time.Duration, multiplier, jitter float64) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt > 30 {
		attempt = 30
	}

	d := time.Duration(float64(base) * Pow(multiplier, attempt))
	if d < 0 || (max > 0 && d > max) {
		d = max
	}

	jitter = clamp(jitter)
	if jitter > 0 {
		extra := time.Duration(float64(d) * jitter * rand.Float64())
		if max > 0 && d+extra > max {
			d = max
		} else {
			d += extra
		}
	}
	return d
}

// Decorrelated implements AWS-style decorrelated jitter: a random delay
// between base and min(max, base*3^attempt). Stateless approximation of
// https://aws.amazon.com/blogs/architecture/exponential-backoff-and-jitter/.
type Decorrelated struct{}

func (Decorrelated) Delay(attempt int, base, max time.Duration, _, _ float64) time.Duration {
	if attempt <= 0 {
		return base
	}
	if attempt > 10 {
		attempt = 10
	}

	lower := float64(base)
	upper := lower * Pow(3.0, attempt)
	if maxf := float64(max); max > 0 && (upper > maxf || upper < 0) {
		upper = maxf
	}
	if upper < lower {
		upper = lower
	}

	d := time.Duration(lower + rand.Float64()*(upper-lower))
	if d < 0 || (max > 0 && d > max) {
		d = max
	}
	return d
}

// Pow is integer exponentiation on float64, avoiding math.Pow on the retry path.
func Pow(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

func clamp(jitter float64) float64 {
	if jitter < 0 {
		return 0
	}
	if jitter > 1 {
		return 1
	}
	return jitter
}
