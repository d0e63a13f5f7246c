package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mirefen/GloamBot_Go/internal/domain"
)

// ActorRepository implements the actor repository for PostgreSQL
type ActorRepository struct {
	db *pgxpool.Pool
}

// NewActorRepository creates a new ActorRepository
func NewActorRepository(db *pgxpool.Pool) *ActorRepository {
	return &ActorRepository{db: db}
}

// scanActor maps one actors row into a domain.Actor. Buff and debuff are
// stored as nullable jsonb.
func scanActor(row pgx.Row) (*domain.Actor, error) {
	var (
		actor     domain.Actor
		platform  string
		buffRaw   []byte
		debuffRaw []byte
	)

	err := row.Scan(
		&actor.ID, &platform, &actor.DiscordID, &actor.Username, &actor.Job,
		&actor.Hearts, &actor.MaxHearts, &actor.Stamina, &actor.MaxStamina,
		&actor.Attack, &actor.Defense,
		&actor.KnockedOut, &actor.Immune, &buffRaw, &debuffRaw, &actor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(buffRaw) > 0 {
		var buff domain.Buff
		if err := json.Unmarshal(buffRaw, &buff); err != nil {
			return nil, fmt.Errorf("failed to decode buff: %w", err)
		}
		actor.Buff = &buff
	}
	if len(debuffRaw) > 0 {
		var debuff domain.Debuff
		if err := json.Unmarshal(debuffRaw, &debuff); err != nil {
			return nil, fmt.Errorf("failed to decode debuff: %w", err)
		}
		actor.Debuff = &debuff
	}

	return &actor, nil
}

func encodeStatus(buff *domain.Buff, debuff *domain.Debuff) ([]byte, []byte, error) {
	var buffRaw, debuffRaw []byte
	var err error

	if buff != nil {
		if buffRaw, err = json.Marshal(buff); err != nil {
			return nil, nil, fmt.Errorf("failed to encode buff: %w", err)
		}
	}
	if debuff != nil {
		if debuffRaw, err = json.Marshal(debuff); err != nil {
			return nil, nil, fmt.Errorf("failed to encode debuff: %w", err)
		}
	}
	return buffRaw, debuffRaw, nil
}

// UpsertActor inserts a new actor or refreshes the username of an existing one
func (r *ActorRepository) UpsertActor(ctx context.Context, actor *domain.Actor) error {
	buffRaw, debuffRaw, err := encodeStatus(actor.Buff, actor.Debuff)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sqlUpsertActor,
		actor.ID, domain.PlatformDiscord, actor.DiscordID, actor.Username, actor.Job,
		actor.Hearts, actor.MaxHearts, actor.Stamina, actor.MaxStamina,
		actor.Attack, actor.Defense, actor.KnockedOut, actor.Immune,
		buffRaw, debuffRaw,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert actor: %w", err)
	}
	return nil
}

// GetActorByPlatformID finds an actor by their platform-specific ID
func (r *ActorRepository) GetActorByPlatformID(ctx context.Context, platform, platformID string) (*domain.Actor, error) {
	actor, err := scanActor(r.db.QueryRow(ctx, sqlSelectActorByPlatformID, platform, platformID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActorNotFound
		}
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}
	return actor, nil
}

// GetActorByID finds an actor by primary key
func (r *ActorRepository) GetActorByID(ctx context.Context, actorID string) (*domain.Actor, error) {
	actor, err := scanActor(r.db.QueryRow(ctx, sqlSelectActorByID, actorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActorNotFound
		}
		return nil, fmt.Errorf("failed to get actor: %w", err)
	}
	return actor, nil
}

// UpdateActor overwrites all mutable actor fields
func (r *ActorRepository) UpdateActor(ctx context.Context, actor domain.Actor) error {
	buffRaw, debuffRaw, err := encodeStatus(actor.Buff, actor.Debuff)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sqlUpdateActor,
		actor.ID, actor.Username, actor.Job,
		actor.Hearts, actor.MaxHearts, actor.Stamina, actor.MaxStamina,
		actor.Attack, actor.Defense, actor.KnockedOut, actor.Immune,
		buffRaw, debuffRaw,
	)
	if err != nil {
		return fmt.Errorf("failed to update actor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrActorNotFound
	}
	return nil
}

// ApplyDamage subtracts hearts server-side. The conditional update skips
// already knocked-out actors; in that case the current row is returned
// unchanged.
func (r *ActorRepository) ApplyDamage(ctx context.Context, actorID string, hearts int) (*domain.Actor, error) {
	actor, err := scanActor(r.db.QueryRow(ctx, sqlApplyDamage, actorID, hearts))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either the actor does not exist or is already knocked out
			return r.GetActorByID(ctx, actorID)
		}
		return nil, fmt.Errorf("failed to apply damage: %w", err)
	}
	return actor, nil
}

// SetKnockedOut marks the actor as knocked out
func (r *ActorRepository) SetKnockedOut(ctx context.Context, actorID string) error {
	tag, err := r.db.Exec(ctx, sqlSetKnockedOut, actorID)
	if err != nil {
		return fmt.Errorf("failed to set knockout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrActorNotFound
	}
	return nil
}

// Heal adds hearts capped at max_hearts and clears the knockout flag
func (r *ActorRepository) Heal(ctx context.Context, actorID string, hearts int) (*domain.Actor, error) {
	actor, err := scanActor(r.db.QueryRow(ctx, sqlHealActor, actorID, hearts))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActorNotFound
		}
		return nil, fmt.Errorf("failed to heal actor: %w", err)
	}
	return actor, nil
}

// AddLoot adds awarded items to the actor's inventory in one transaction
func (r *ActorRepository) AddLoot(ctx context.Context, actorID string, items []domain.LootItem) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	for _, item := range items {
		if _, err := tx.Exec(ctx, sqlUpsertLootItem, actorID, item.ItemName, item.Quantity); err != nil {
			return fmt.Errorf("failed to add loot item %s: %w", item.ItemName, err)
		}
	}

	return tx.Commit(ctx)
}

// GetInventory returns the actor's item quantities by name
func (r *ActorRepository) GetInventory(ctx context.Context, actorID string) (map[string]int, error) {
	rows, err := r.db.Query(ctx, sqlSelectInventory, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	defer rows.Close()

	inventory := make(map[string]int)
	for rows.Next() {
		var name string
		var quantity int
		if err := rows.Scan(&name, &quantity); err != nil {
			return nil, fmt.Errorf("failed to scan inventory row: %w", err)
		}
		inventory[name] = quantity
	}
	return inventory, rows.Err()
}

// GetLastCooldown returns the last-used timestamp for an action, or nil
func (r *ActorRepository) GetLastCooldown(ctx context.Context, actorID, action string) (*time.Time, error) {
	var lastUsed time.Time
	err := r.db.QueryRow(ctx, sqlSelectLastCooldown, actorID, action).Scan(&lastUsed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cooldown: %w", err)
	}
	return &lastUsed, nil
}

// UpdateCooldown upserts the last-used timestamp for an action
func (r *ActorRepository) UpdateCooldown(ctx context.Context, actorID, action string, timestamp time.Time) error {
	if _, err := r.db.Exec(ctx, sqlUpsertCooldown, actorID, action, timestamp); err != nil {
		return fmt.Errorf("failed to update cooldown: %w", err)
	}
	return nil
}
