// Package lifecycle holds process-wide bounds for start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds lifecycle hooks such as database ping and HTTP shutdown.
const DefaultTimeout = 10 * time.Second
