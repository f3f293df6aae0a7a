// Package constants provides shared configuration values used across the vigil application.
package constants

import "time"

// Configuration file defaults
const (
	// DefaultConfigFile is the default configuration filename
	DefaultConfigFile = "vigil.yaml"

	// DefaultStoreFile is the default site store filename
	DefaultStoreFile = "sites.json"

	// DefaultLogDir is the default directory for daily event logs
	DefaultLogDir = "logs"

	// DefaultAPIHost is the default host for the API server
	DefaultAPIHost = "127.0.0.1"

	// DefaultAPIPort is the default port for the API server
	DefaultAPIPort = 4848

	// DefaultAPIAddress is the default API address for client connections
	DefaultAPIAddress = "http://127.0.0.1:4848"
)

// Timeout and duration defaults
const (
	// DefaultPollGranularity is how often the scheduler scans for due sites
	DefaultPollGranularity = time.Second

	// DefaultProbeTimeout bounds a single HTTP health check
	DefaultProbeTimeout = 10 * time.Second

	// DefaultActionTimeout bounds a single recovery command invocation
	DefaultActionTimeout = 30 * time.Second

	// DefaultRequestTimeout is the default timeout for API client requests
	DefaultRequestTimeout = 30 * time.Second

	// DefaultShutdownTimeout is the default timeout for graceful API shutdown
	DefaultShutdownTimeout = 5 * time.Second
)

// Event buffer sizes
const (
	// DefaultEventBufferSize is the number of events kept in the ring buffer
	DefaultEventBufferSize = 1000

	// DefaultSubscriptionBuffer is the default size for subscription channels
	DefaultSubscriptionBuffer = 100

	// DefaultEventLimit is the default number of events returned by the API
	DefaultEventLimit = 100

	// MaxEventLimit caps the number of events a single API request can ask
	// for, to bound response size
	MaxEventLimit = 10000
)
