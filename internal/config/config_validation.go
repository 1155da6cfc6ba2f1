package config

import "time"

// Default values applied to fields left empty by every configuration source.
const (
	DefaultHTTPAddress      = ":8080"
	DefaultDSN              = "data/forum.db"
	DefaultTokenIssuer      = "webdev-forum"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultMaxFailedLogins  = 5
	DefaultLockoutDuration  = 15 * time.Minute
	DefaultRequestTimeout   = 30 * time.Second
	DefaultPruneInterval    = time.Hour
	DefaultAttemptRetention = 30 * 24 * time.Hour
)

// applyDefaults fills every zero-valued field that has a sensible default.
// Secrets have no default: TokenSignKey must be supplied explicitly.
func (c *StructuredConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = DefaultHTTPAddress
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = DefaultRequestTimeout
	}
	if c.Storage.DB.DSN == "" {
		c.Storage.DB.DSN = DefaultDSN
	}
	if c.Auth.TokenIssuer == "" {
		c.Auth.TokenIssuer = DefaultTokenIssuer
	}
	if c.Auth.TokenDuration == 0 {
		c.Auth.TokenDuration = DefaultTokenDuration
	}
	if c.Auth.MaxFailedLogins == 0 {
		c.Auth.MaxFailedLogins = DefaultMaxFailedLogins
	}
	if c.Auth.LockoutDuration == 0 {
		c.Auth.LockoutDuration = DefaultLockoutDuration
	}
	if c.Workers.PruneInterval == 0 {
		c.Workers.PruneInterval = DefaultPruneInterval
	}
	if c.Workers.AttemptRetention == 0 {
		c.Workers.AttemptRetention = DefaultAttemptRetention
	}
}

// validate checks that the merged configuration is usable.
func (c *StructuredConfig) validate() error {
	if c.Auth.TokenSignKey == "" {
		return errNoTokenSignKey
	}
	if c.Auth.MaxFailedLogins < 1 {
		return errInvalidLockoutPolicy
	}
	if c.Auth.LockoutDuration < 0 {
		return errInvalidLockoutPolicy
	}

	return nil
}
