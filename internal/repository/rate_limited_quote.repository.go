package repository

import (
	"sync"
	"time"

	"fundtracker/internal/domain"
)

// NewRateLimitedQuoteRepository decorates a QuoteRepository with a
// sliding-window ceiling, by default the vendor's 650 requests per minute.
// Callers block until a slot frees; nothing downstream knows the limiter
// exists.
func NewRateLimitedQuoteRepository(inner QuoteRepository, maxRequests int, window time.Duration) QuoteRepository {
	return &rateLimitedQuoteRepository{
		inner: inner,
		limiter: &slidingWindowLimiter{
			maxRequests: maxRequests,
			window:      window,
		},
	}
}

type rateLimitedQuoteRepository struct {
	inner   QuoteRepository
	limiter *slidingWindowLimiter
}

func (r *rateLimitedQuoteRepository) GetPreviousClose(securityId string, tradeDate string) (float64, bool, error) {
	r.limiter.acquire()
	return r.inner.GetPreviousClose(securityId, tradeDate)
}

func (r *rateLimitedQuoteRepository) GetIntradaySeries(securityId string, day string) (domain.IntradaySeries, error) {
	r.limiter.acquire()
	return r.inner.GetIntradaySeries(securityId, day)
}

type slidingWindowLimiter struct {
	mu          sync.Mutex
	maxRequests int
	window      time.Duration
	sent        []time.Time
}

// acquire blocks until a request slot is free, then claims it.
func (l *slidingWindowLimiter) acquire() {
	for {
		l.mu.Lock()
		now := time.Now()
		cutoff := now.Add(-l.window)

		kept := l.sent[:0]
		for _, ts := range l.sent {
			if ts.After(cutoff) {
				kept = append(kept, ts)
			}
		}
		l.sent = kept

		if len(l.sent) < l.maxRequests {
			l.sent = append(l.sent, now)
			l.mu.Unlock()
			return
		}

		wait := l.window - now.Sub(l.sent[0])
		l.mu.Unlock()
		if wait <= 0 {
			wait = 10 * time.Millisecond
		}
		time.Sleep(wait)
	}
}
