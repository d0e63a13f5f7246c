package cooldown

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mirefen/GloamBot_Go/internal/logger"
)

// postgresBackend implements Service using PostgreSQL
type postgresBackend struct {
	db     *pgxpool.Pool
	config Config
}

// NewPostgresService creates a new cooldown service with Postgres backend
func NewPostgresService(db *pgxpool.Pool, config Config) Service {
	return &postgresBackend{
		db:     db,
		config: config,
	}
}

// CheckCooldown checks if an actor's action is on cooldown (unlocked read)
func (b *postgresBackend) CheckCooldown(ctx context.Context, actorID, action string) (bool, time.Duration, error) {
	if b.config.DevMode {
		return false, 0, nil
	}

	lastUsed, err := b.getLastUsed(ctx, actorID, action)
	if err != nil {
		return false, 0, fmt.Errorf(ErrMsgCheckCooldownFailed, err)
	}

	if lastUsed == nil {
		// Never used - not on cooldown
		return false, 0, nil
	}

	onCooldown, remaining := checkCooldownInternal(lastUsed, b.config.GetCooldownDuration(action))
	return onCooldown, remaining, nil
}

// EnforceCooldown atomically checks cooldown and executes action if allowed.
// Uses check-then-lock: a cheap unlocked read rejects most on-cooldown
// requests, then an advisory-locked transaction closes the race window.
func (b *postgresBackend) EnforceCooldown(ctx context.Context, actorID, action string, fn func() error) error {
	log := logger.FromContext(ctx)

	onCooldown, remaining, err := b.CheckCooldown(ctx, actorID, action)
	if err != nil {
		return err
	}
	if onCooldown {
		return ErrOnCooldown{Action: action, Remaining: remaining}
	}

	if b.config.DevMode {
		log.Debug(LogMsgDevModeBypass, "action", action, "actorID", actorID)
		if err := fn(); err != nil {
			return err
		}
		// Still update cooldown for testing purposes
		return b.updateCooldown(ctx, actorID, action, time.Now())
	}

	// Advisory locks work even when no row exists (unlike SELECT FOR UPDATE)
	tx, err := b.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTransactionFailed, err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	lockKey := hashActorAction(actorID, action)
	if _, err = tx.Exec(ctx, SQLAdvisoryLock, lockKey); err != nil {
		return fmt.Errorf(ErrMsgAcquireLockFailed, err)
	}

	// Recheck with the exclusive lock held
	lastUsed, err := b.getLastUsedTx(ctx, tx, actorID, action)
	if err != nil {
		return fmt.Errorf(ErrMsgGetCooldownTxFailed, err)
	}

	if lastUsed != nil {
		onCooldown, remaining := checkCooldownInternal(lastUsed, b.config.GetCooldownDuration(action))
		if onCooldown {
			log.Debug(LogMsgRaceConditionDetected,
				"action", action, "actorID", actorID, "remaining", remaining)
			return ErrOnCooldown{Action: action, Remaining: remaining}
		}
	}

	if err := fn(); err != nil {
		// Action failed - rollback, don't update cooldown
		return err
	}

	if err := b.updateCooldownTx(ctx, tx, actorID, action, time.Now()); err != nil {
		return fmt.Errorf(ErrMsgUpdateCooldownFailed, err)
	}

	// Commit releases the advisory lock automatically
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTransactionFailed, err)
	}

	log.Debug(LogMsgCooldownEnforced, "action", action, "actorID", actorID)
	return nil
}

// ResetCooldown manually resets a cooldown
func (b *postgresBackend) ResetCooldown(ctx context.Context, actorID, action string) error {
	if _, err := b.db.Exec(ctx, SQLDeleteCooldown, actorID, action); err != nil {
		return fmt.Errorf(ErrMsgResetCooldownFailed, err)
	}
	return nil
}

// GetLastUsed returns when action was last performed
func (b *postgresBackend) GetLastUsed(ctx context.Context, actorID, action string) (*time.Time, error) {
	return b.getLastUsed(ctx, actorID, action)
}

func (b *postgresBackend) getLastUsed(ctx context.Context, actorID, action string) (*time.Time, error) {
	var lastUsed time.Time

	err := b.db.QueryRow(ctx, SQLSelectLastUsed, actorID, action).Scan(&lastUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No cooldown record
		}
		return nil, fmt.Errorf(ErrMsgGetLastUsedFailed, err)
	}
	return &lastUsed, nil
}

func (b *postgresBackend) getLastUsedTx(ctx context.Context, tx pgx.Tx, actorID, action string) (*time.Time, error) {
	var lastUsed time.Time

	err := tx.QueryRow(ctx, SQLSelectLastUsed, actorID, action).Scan(&lastUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No cooldown record
		}
		return nil, fmt.Errorf(ErrMsgGetLastUsedFailed, err)
	}
	return &lastUsed, nil
}

func (b *postgresBackend) updateCooldown(ctx context.Context, actorID, action string, timestamp time.Time) error {
	_, err := b.db.Exec(ctx, SQLUpsertCooldown, actorID, action, timestamp)
	return err
}

func (b *postgresBackend) updateCooldownTx(ctx context.Context, tx pgx.Tx, actorID, action string, timestamp time.Time) error {
	_, err := tx.Exec(ctx, SQLUpsertCooldown, actorID, action, timestamp)
	return err
}

// hashActorAction creates a consistent int64 hash from actorID + action for advisory locking
func hashActorAction(actorID, action string) int64 {
	h := sha256.Sum256([]byte(actorID + HashSeparator + action))
	return int64(binary.BigEndian.Uint64(h[:8]) & HashMaskPositiveInt64)
}

func checkCooldownInternal(lastUsed *time.Time, duration time.Duration) (bool, time.Duration) {
	if lastUsed == nil {
		return false, 0
	}

	elapsed := time.Since(*lastUsed)
	if elapsed < duration {
		return true, duration - elapsed
	}

	return false, 0
}
