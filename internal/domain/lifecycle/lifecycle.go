// Package lifecycle holds shared start/stop constants for fx-managed
// components.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of managed
// components.
const DefaultTimeout = 10 * time.Second
