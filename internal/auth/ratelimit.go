package auth

import (
	"sync"
	"time"
)

// RateLimitConfig tunes the sign-in throttle.
type RateLimitConfig struct {
	MaxAttempts     int           // Failed attempts allowed inside the window
	WindowDuration  time.Duration // Sliding window for counting failures
	LockoutDuration time.Duration // Lockout length once the limit is hit
	CleanupInterval time.Duration // How often stale records are dropped
}

// DefaultRateLimitConfig returns the default sign-in throttle settings.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		MaxAttempts:     5,
		WindowDuration:  15 * time.Minute,
		LockoutDuration: 30 * time.Minute,
		CleanupInterval: 5 * time.Minute,
	}
}

// RateLimiter throttles sign-in attempts per (client IP, identifier)
// pair: after MaxAttempts failures inside the window the pair is locked
// out. A successful sign-in clears the record.
type RateLimiter struct {
	mu       sync.Mutex
	attempts map[string]*attemptWindow
	cfg      RateLimitConfig
	stop     chan struct{}
}

type attemptWindow struct {
	failures    int
	windowStart time.Time
	lockedUntil time.Time
}

// NewRateLimiter creates a rate limiter and starts its cleanup loop.
// Zero or negative config values fall back to the defaults.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	defaults := DefaultRateLimitConfig()
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaults.MaxAttempts
	}
	if cfg.WindowDuration <= 0 {
		cfg.WindowDuration = defaults.WindowDuration
	}
	if cfg.LockoutDuration <= 0 {
		cfg.LockoutDuration = defaults.LockoutDuration
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = defaults.CleanupInterval
	}

	rl := &RateLimiter{
		attempts: make(map[string]*attemptWindow),
		cfg:      cfg,
		stop:     make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop terminates the background cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

func rateLimitKey(ip, identifier string) string {
	return ip + ":" + identifier
}

// Allow reports whether a sign-in attempt may proceed. When blocked, the
// second return value is how long to wait before retrying.
func (rl *RateLimiter) Allow(ip, identifier string) (bool, time.Duration) {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	record, exists := rl.attempts[rateLimitKey(ip, identifier)]
	if !exists {
		return true, 0
	}

	if now.Before(record.lockedUntil) {
		return false, record.lockedUntil.Sub(now)
	}

	// Window expired, the pair starts over
	if now.Sub(record.windowStart) > rl.cfg.WindowDuration {
		return true, 0
	}

	if record.failures < rl.cfg.MaxAttempts {
		return true, 0
	}

	return false, rl.cfg.LockoutDuration
}

// RecordFailure counts a failed sign-in. Reaching the limit starts the
// lockout; the return values mirror Allow for the now-locked case.
func (rl *RateLimiter) RecordFailure(ip, identifier string) (bool, time.Duration) {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	key := rateLimitKey(ip, identifier)
	record, exists := rl.attempts[key]
	if !exists || now.Sub(record.windowStart) > rl.cfg.WindowDuration {
		record = &attemptWindow{windowStart: now}
		rl.attempts[key] = record
	}

	record.failures++

	if record.failures >= rl.cfg.MaxAttempts {
		record.lockedUntil = now.Add(rl.cfg.LockoutDuration)
		return true, rl.cfg.LockoutDuration
	}

	return false, 0
}

// RecordSuccess clears the failure record after a successful sign-in.
func (rl *RateLimiter) RecordSuccess(ip, identifier string) {
	rl.mu.Lock()
	delete(rl.attempts, rateLimitKey(ip, identifier))
	rl.mu.Unlock()
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stop:
			return
		}
	}
}

// cleanup drops records whose window and lockout have both expired.
func (rl *RateLimiter) cleanup() {
	now := time.Now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, record := range rl.attempts {
		windowExpired := now.Sub(record.windowStart) > rl.cfg.WindowDuration+rl.cfg.LockoutDuration
		lockoutExpired := now.After(record.lockedUntil)
		if windowExpired && lockoutExpired {
			delete(rl.attempts, key)
		}
	}
}
