// Package constants defines shared constants and configuration values
// used throughout the sfoglia navigation engine.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// FallbackRouteKey is the route key resolved when an unknown key is
// requested. Every registry must have an entry under this key.
const FallbackRouteKey = "404"

// DefaultScheme is the URI scheme used by the deep-link codec when the
// application does not configure its own.
const DefaultScheme = "sfoglia"

// HandoffIDEnvVar carries the single-use handoff identifier into a
// detached window's process.
const HandoffIDEnvVar = "SFOGLIA_HANDOFF_ID"

// StartURLEnvVar carries a deep-link URL for the fallback adoption path
// when no handoff slot is available.
const StartURLEnvVar = "SFOGLIA_START_URL"

// DefaultHandoffTTL is how long an unconsumed handoff slot survives
// before a sweep reclaims it.
const DefaultHandoffTTL = 10 * time.Minute

// HandoffFileSuffix is the filename suffix for file-backed handoff slots.
const HandoffFileSuffix = ".handoff.json"
