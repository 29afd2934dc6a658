package ratelimit

import (
	"sync"
	"time"

	"newsiq/internal/logger"
)

// AIBudget caps how many Gemini requests the app may spend per day. Analysis
// and quiz generation draw from the same budget; the counter resets daily.
type AIBudget struct {
	mu        sync.Mutex
	count     int
	max       int // 0 = unlimited
	resetTime time.Time
}

func NewAIBudget(max int) *AIBudget {
	return &AIBudget{
		max:       max,
		resetTime: time.Now().Add(24 * time.Hour),
	}
}

// Allow reports whether another request fits the budget and, if so, spends
// one slot.
func (b *AIBudget) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.checkReset()

	if b.max > 0 && b.count >= b.max {
		logger.Warn("AI request budget exhausted", "used", b.count, "max", b.max)
		return false
	}

	b.count++
	return true
}

// Used returns how many requests have been spent in the current window.
func (b *AIBudget) Used() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.checkReset()
	return b.count
}

func (b *AIBudget) checkReset() {
	if time.Now().After(b.resetTime) {
		b.count = 0
		b.resetTime = time.Now().Add(24 * time.Hour)
	}
}
