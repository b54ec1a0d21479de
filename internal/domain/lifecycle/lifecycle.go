// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of served surfaces and clients.
const DefaultTimeout = 10 * time.Second
