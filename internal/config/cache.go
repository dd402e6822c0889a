package config

import "time"

// CacheConfig defines settings for the response cache applied to the read
// endpoints (catalog and availability). Cached availability can lag the
// store by up to TTL; booking commits always re-validate against the live
// store, so a stale hit can never oversell, only briefly advertise a slot
// that is about to be rejected.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults: enabled, 15s TTL, 1 MiB response cap.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          envDur("CACHE_TTL", 15*time.Second),
		Prefix:       getenv("CACHE_PREFIX", "cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
