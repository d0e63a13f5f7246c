package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgActorNotFound     = "actor not found"
	ErrMsgItemNotFound      = "item not found"
	ErrMsgUnknownLocation   = "unknown location"
	ErrMsgUnknownMonster    = "unknown monster"
	ErrMsgOnCooldown        = "action on cooldown"
	ErrMsgInvalidPlatform   = "invalid platform"
	ErrMsgInvalidInput      = "invalid input"
	ErrMsgStateInconsistent = "actor state inconsistent"
	ErrMsgDatabaseError     = "database error"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	ErrActorNotFound   = errors.New(ErrMsgActorNotFound)
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrUnknownLocation = errors.New(ErrMsgUnknownLocation)
	ErrUnknownMonster  = errors.New(ErrMsgUnknownMonster)
	ErrOnCooldown      = errors.New(ErrMsgOnCooldown)
	ErrInvalidPlatform = errors.New(ErrMsgInvalidPlatform)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)

	// ErrStateInconsistent is fatal: an outcome was chosen but could not be
	// applied, leaving persisted state out of step with the reported result.
	ErrStateInconsistent = errors.New(ErrMsgStateInconsistent)

	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
