// Package ratelimit provides token-bucket rate limiting for the HTTP API.
package ratelimit

import (
	"sync"
	"time"
)

// bucket is a token bucket refilling at a steady rate.
type bucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newBucket(capacity int, window time.Duration) *bucket {
	return &bucket{
		capacity:   capacity,
		refillRate: float64(capacity) / window.Seconds(),
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// take refills the bucket for elapsed time and consumes one token if
// available. Returns whether the request is allowed, the remaining tokens,
// and when the bucket will next be full.
func (b *bucket) take() (allowed bool, remaining int, resetTime time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(float64(b.capacity), b.tokens+now.Sub(b.lastRefill).Seconds()*b.refillRate)
	b.lastRefill = now

	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		allowed = true
	}

	remaining = int(b.tokens)
	resetTime = now
	if b.tokens < float64(b.capacity) {
		deficit := float64(b.capacity) - b.tokens
		resetTime = now.Add(time.Duration(deficit / b.refillRate * float64(time.Second)))
	}
	return allowed, remaining, resetTime
}

// Info describes the rate limit status returned with a decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Limiter manages per-client, per-endpoint token buckets.
type Limiter struct {
	config *Config

	mu      sync.RWMutex
	buckets map[string]*bucket

	accessMu   sync.Mutex
	lastAccess map[string]time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a rate limiter with the given configuration and starts
// its idle-bucket cleanup goroutine.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = LoadConfig()
	}

	l := &Limiter{
		config:     config,
		buckets:    make(map[string]*bucket),
		lastAccess: make(map[string]time.Time),
	}
	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanup()
	}
	return l
}

// Allow decides whether a request from clientID to the given endpoint and
// method may proceed.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	ec := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if ec == nil {
		ec = &EndpointConfig{Limit: l.config.DefaultLimit, Window: l.config.DefaultWindow}
	}
	if ec.Limit <= 0 {
		// Unlimited endpoint (health check).
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + ec.Path + ":" + method
	b := l.getBucket(key, ec.Limit, ec.Window)

	l.accessMu.Lock()
	l.lastAccess[key] = time.Now()
	l.accessMu.Unlock()

	allowed, remaining, resetTime := b.take()

	var retryAfter time.Duration
	if !allowed {
		if retryAfter = time.Until(resetTime); retryAfter < 0 {
			retryAfter = 0
		}
	}
	return allowed, Info{
		Allowed:    allowed,
		Limit:      ec.Limit,
		Remaining:  remaining,
		ResetTime:  resetTime,
		RetryAfter: retryAfter,
	}
}

// Stop stops the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	}
}

func (l *Limiter) getBucket(key string, limit int, window time.Duration) *bucket {
	l.mu.RLock()
	b, exists := l.buckets[key]
	l.mu.RUnlock()
	if exists {
		return b
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if b, exists = l.buckets[key]; exists {
		return b
	}
	b = newBucket(limit, window)
	l.buckets[key] = b
	return b
}

// cleanup periodically drops buckets that have been idle for longer than the
// cleanup interval.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupStop:
			return
		case <-l.cleanupTicker.C:
			cutoff := time.Now().Add(-l.config.CleanupInterval)

			l.accessMu.Lock()
			var stale []string
			for key, last := range l.lastAccess {
				if last.Before(cutoff) {
					stale = append(stale, key)
					delete(l.lastAccess, key)
				}
			}
			l.accessMu.Unlock()

			l.mu.Lock()
			for _, key := range stale {
				delete(l.buckets, key)
			}
			l.mu.Unlock()
		}
	}
}
