// Package lifecycle holds timeouts shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook that talks to an external resource.
const DefaultTimeout = 10 * time.Second
