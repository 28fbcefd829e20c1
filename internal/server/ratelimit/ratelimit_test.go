package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:           true,
		RequestsPerSecond: 1,
		Burst:             2,
		Whitelist:         make(map[string]bool),
		Blacklist:         make(map[string]bool),
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	allowed, info := l.Allow("10.0.0.1")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)

	allowed, _ = l.Allow("10.0.0.1")
	assert.True(t, allowed)
}

func TestLimiter_BlocksPastBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("10.0.0.1")
	l.Allow("10.0.0.1")

	allowed, info := l.Allow("10.0.0.1")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("10.0.0.1")
	l.Allow("10.0.0.1")
	allowed, _ := l.Allow("10.0.0.1")
	require.False(t, allowed)

	allowed, _ = l.Allow("10.0.0.2")
	assert.True(t, allowed, "a saturated bucket must not affect other clients")
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("10.0.0.1")
		assert.True(t, allowed)
	}
}

func TestLimiter_Whitelist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["10.0.0.9"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("10.0.0.9")
		assert.True(t, allowed)
	}
}

func TestLimiter_Blacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Blacklist["10.0.0.66"] = true
	l := NewLimiter(cfg)
	defer l.Stop()

	allowed, info := l.Allow("10.0.0.66")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
}

func TestLimiter_NilConfigUsesDefaults(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()

	allowed, info := l.Allow("10.0.0.1")
	assert.True(t, allowed)
	assert.Equal(t, 20, info.Limit)
}

func TestLimiter_TracksClients(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 5; i++ {
		l.Allow(fmt.Sprintf("10.0.0.%d", i))
	}
	assert.Equal(t, 5, l.ClientCount())
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, float64(10), cfg.RequestsPerSecond)
	assert.Equal(t, 20, cfg.Burst)
}

func TestLoadConfig_DisabledViaEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2")

	cfg := LoadConfig()
	assert.Equal(t, 2.5, cfg.RequestsPerSecond)
	assert.Equal(t, 5, cfg.Burst)
	assert.True(t, cfg.Whitelist["10.0.0.1"])
	assert.True(t, cfg.Whitelist["10.0.0.2"])
}
