package ratelimit

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// TokenLimiter enforces a per-minute token budget for LLM requests.
type TokenLimiter struct {
	limiter *rate.Limiter
	max     int
}

// NewTokenLimiter creates a TokenLimiter that refills maxTokenPerMinute
// tokens over the course of one minute.
func NewTokenLimiter(maxTokenPerMinute int) *TokenLimiter {
	return &TokenLimiter{
		limiter: rate.NewLimiter(rate.Limit(float64(maxTokenPerMinute)/60.0), maxTokenPerMinute),
		max:     maxTokenPerMinute,
	}
}

// Wait blocks until the given number of tokens is available or the context
// is canceled.
func (t *TokenLimiter) Wait(ctx context.Context, tokens int) error {
	if tokens > t.max {
		return fmt.Errorf("requested %d tokens exceeds the per-minute budget of %d", tokens, t.max)
	}
	return t.limiter.WaitN(ctx, tokens)
}

// GetRemaining reports the tokens currently available in the bucket.
func (t *TokenLimiter) GetRemaining() int {
	return int(t.limiter.Tokens())
}
