// Package lifecycle holds shared limits for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds connect, ping and graceful shutdown hooks.
const DefaultTimeout = 10 * time.Second
