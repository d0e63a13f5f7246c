package database

import "time"

// Pool sizing
const (
	// WarmConnDivisor is the fraction of MaxConns kept open as MinConns
	WarmConnDivisor = 4

	// MinWarmConns is the floor for warm connections
	MinWarmConns = 2

	// PingTimeout bounds the startup connectivity check
	PingTimeout = 5 * time.Second
)

// Error messages
const (
	ErrMsgParseConnString = "failed to parse database connection string"
	ErrMsgCreatePool      = "failed to create pgx connection pool"
	ErrMsgPingDatabase    = "database ping failed"
)

// Log messages
const (
	LogMsgConnected = "Connected to Postgres"
)
