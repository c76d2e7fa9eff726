// Package lifecycle holds shared constants for component startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of managed
// resources (HTTP server, database pool).
const DefaultTimeout = 10 * time.Second
