package store

import (
	"sync"
	"time"
)

type breakerState int

const (
	stateClosed   breakerState = iota // remote healthy
	stateOpen                         // skipping remote, serving local
	stateHalfOpen                     // allowing one probe request
)

// breaker trips after `threshold` consecutive remote failures so a flapping
// spreadsheet API is skipped for a cooldown window instead of adding its
// timeout to every read.
type breaker struct {
	mu              sync.Mutex
	state           breakerState
	failures        int
	threshold       int
	cooldown        time.Duration
	lastFailureTime time.Time
}

func newBreaker(threshold int, cooldown time.Duration) *breaker {
	return &breaker{
		state:     stateClosed,
		threshold: threshold,
		cooldown:  cooldown,
	}
}

func (b *breaker) allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case stateClosed:
		return true
	case stateOpen:
		if time.Since(b.lastFailureTime) > b.cooldown {
			b.state = stateHalfOpen
			return true
		}
		return false
	case stateHalfOpen:
		return false // only one probe at a time
	}
	return true
}

func (b *breaker) recordSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures = 0
	b.state = stateClosed
}

func (b *breaker) recordFailure() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.failures++
	b.lastFailureTime = time.Now()
	if b.failures >= b.threshold {
		b.state = stateOpen
	}
}
