package cooldown

import "time"

const (
	// DefaultCooldownDuration is the fallback cooldown when no specific duration is configured
	DefaultCooldownDuration = 5 * time.Minute

	// SecondsPerMinute is used for time duration calculations
	SecondsPerMinute = 60
)

const (
	// HashSeparator is the separator used when combining actorID and action for advisory lock hashing
	HashSeparator = ":"

	// HashMaskPositiveInt64 masks the MSB so advisory lock keys stay positive int64 values
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// SQL queries
const (
	// SQLAdvisoryLock acquires a PostgreSQL advisory transaction lock
	SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

	// SQLSelectLastUsed retrieves the last used timestamp for an actor action
	SQLSelectLastUsed = `
		SELECT last_used_at
		FROM actor_cooldowns
		WHERE actor_id = $1 AND action_name = $2
	`

	// SQLDeleteCooldown removes a cooldown record for an actor action
	SQLDeleteCooldown = `DELETE FROM actor_cooldowns WHERE actor_id = $1 AND action_name = $2`

	// SQLUpsertCooldown inserts or updates a cooldown timestamp
	SQLUpsertCooldown = `
		INSERT INTO actor_cooldowns (actor_id, action_name, last_used_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (actor_id, action_name) DO UPDATE
		SET last_used_at = EXCLUDED.last_used_at
	`
)

// Error message formats
const (
	ErrMsgCheckCooldownFailed     = "failed to check cooldown: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgAcquireLockFailed       = "failed to acquire advisory lock: %w"
	ErrMsgGetCooldownTxFailed     = "failed to get cooldown within transaction: %w"
	ErrMsgUpdateCooldownFailed    = "failed to update cooldown: %w"
	ErrMsgCommitTransactionFailed = "failed to commit cooldown transaction: %w"
	ErrMsgResetCooldownFailed     = "failed to reset cooldown: %w"
	ErrMsgGetLastUsedFailed       = "failed to get last used: %w"
)

// Log messages
const (
	LogMsgDevModeBypass         = "DEV_MODE: Bypassing cooldown enforcement"
	LogMsgRaceConditionDetected = "Race condition detected - concurrent request on cooldown"
	LogMsgCooldownEnforced      = "Cooldown enforced successfully"
)
