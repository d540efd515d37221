// Package lifecycle holds timeouts applied to start and stop hooks.
package lifecycle

import "time"

const (
	// DefaultTimeout bounds graceful shutdown of servers and clients.
	DefaultTimeout = 10 * time.Second

	// RestoreTimeout bounds the restore pass run at start.
	RestoreTimeout = 30 * time.Second
)
