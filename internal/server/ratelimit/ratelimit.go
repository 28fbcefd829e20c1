// Package ratelimit provides per-client request rate limiting for the HTTP
// API, built on token buckets from golang.org/x/time/rate.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled           bool
	RequestsPerSecond float64 // Steady-state refill rate per client
	Burst             int     // Burst capacity per client
	CleanupInterval   time.Duration
	IdleTimeout       time.Duration // Clients idle longer than this are dropped
	Whitelist         map[string]bool
	Blacklist         map[string]bool
}

// Info contains information about rate limit status.
type Info struct {
	Allowed    bool
	Limit      int // Burst capacity
	Remaining  int
	RetryAfter time.Duration
}

// client pairs a per-client token bucket with its last access time so idle
// entries can be reclaimed.
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter manages rate limiting for multiple clients, one token bucket each.
type Limiter struct {
	mu            sync.Mutex
	clients       map[string]*client
	config        *Config
	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a new rate limiter with the given configuration.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:           true,
			RequestsPerSecond: 10,
			Burst:             20,
			CleanupInterval:   5 * time.Minute,
			IdleTimeout:       10 * time.Minute,
			Whitelist:         make(map[string]bool),
			Blacklist:         make(map[string]bool),
		}
	}

	l := &Limiter{
		clients: make(map[string]*client),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanup()
	}

	return l
}

// Allow checks if a request from the given client is allowed.
// Returns true if allowed, false if rate limited, along with rate limit
// information.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{Allowed: false, Limit: l.config.Burst}
	}
	if l.config.Whitelist[clientID] {
		return true, Info{Allowed: true, Limit: l.config.Burst, Remaining: l.config.Burst}
	}

	lim := l.bucket(clientID)

	// Reserve rather than Allow so a rejected request can report how long
	// the client should wait. A reservation with a delay is cancelled to
	// give the token back.
	res := lim.Reserve()
	if delay := res.Delay(); delay > 0 {
		res.Cancel()
		return false, Info{
			Allowed:    false,
			Limit:      l.config.Burst,
			Remaining:  0,
			RetryAfter: delay,
		}
	}

	remaining := int(lim.Tokens())
	if remaining < 0 {
		remaining = 0
	}
	return true, Info{
		Allowed:   true,
		Limit:     l.config.Burst,
		Remaining: remaining,
	}
}

// bucket returns the client's limiter, creating it on first sight.
func (l *Limiter) bucket(clientID string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[clientID]
	if !ok {
		c = &client{
			limiter: rate.NewLimiter(rate.Limit(l.config.RequestsPerSecond), l.config.Burst),
		}
		l.clients[clientID] = c
	}
	c.lastSeen = time.Now()
	return c.limiter
}

// cleanup periodically drops clients that have been idle past the configured
// timeout, bounding memory growth under rotating client populations.
func (l *Limiter) cleanup() {
	for {
		select {
		case <-l.cleanupTicker.C:
			cutoff := time.Now().Add(-l.config.IdleTimeout)
			l.mu.Lock()
			for id, c := range l.clients {
				if c.lastSeen.Before(cutoff) {
					delete(l.clients, id)
				}
			}
			l.mu.Unlock()
		case <-l.cleanupStop:
			return
		}
	}
}

// Stop halts the cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	}
}

// ClientCount returns the number of tracked clients.
func (l *Limiter) ClientCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}
