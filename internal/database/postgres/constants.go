package postgres

// SQL fragments shared by actor repository queries
const (
	actorColumns = `
		actor_id, platform, platform_id, username, job,
		hearts, max_hearts, stamina, max_stamina, attack, defense,
		knocked_out, immune, buff, debuff, updated_at
	`

	sqlSelectActorByID = `
		SELECT ` + actorColumns + `
		FROM actors
		WHERE actor_id = $1
	`

	sqlSelectActorByPlatformID = `
		SELECT ` + actorColumns + `
		FROM actors
		WHERE platform = $1 AND platform_id = $2
	`

	sqlUpsertActor = `
		INSERT INTO actors (
			actor_id, platform, platform_id, username, job,
			hearts, max_hearts, stamina, max_stamina, attack, defense,
			knocked_out, immune, buff, debuff, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		ON CONFLICT (platform, platform_id) DO UPDATE
		SET username = EXCLUDED.username, updated_at = NOW()
	`

	sqlUpdateActor = `
		UPDATE actors
		SET username = $2, job = $3,
			hearts = $4, max_hearts = $5, stamina = $6, max_stamina = $7,
			attack = $8, defense = $9, knocked_out = $10, immune = $11,
			buff = $12, debuff = $13, updated_at = NOW()
		WHERE actor_id = $1
	`

	// Damage is conditional on knocked_out so a concurrent knockout can
	// never double-apply, and GREATEST floors hearts at zero server-side.
	sqlApplyDamage = `
		UPDATE actors
		SET hearts = GREATEST(hearts - $2, 0), updated_at = NOW()
		WHERE actor_id = $1 AND knocked_out = FALSE
		RETURNING ` + actorColumns + `
	`

	sqlSetKnockedOut = `
		UPDATE actors
		SET knocked_out = TRUE, updated_at = NOW()
		WHERE actor_id = $1
	`

	sqlHealActor = `
		UPDATE actors
		SET hearts = LEAST(hearts + $2, max_hearts), knocked_out = FALSE, updated_at = NOW()
		WHERE actor_id = $1
		RETURNING ` + actorColumns + `
	`

	sqlUpsertLootItem = `
		INSERT INTO actor_items (actor_id, item_name, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (actor_id, item_name) DO UPDATE
		SET quantity = actor_items.quantity + EXCLUDED.quantity
	`

	sqlSelectInventory = `
		SELECT item_name, quantity
		FROM actor_items
		WHERE actor_id = $1
	`

	sqlSelectLastCooldown = `
		SELECT last_used_at
		FROM actor_cooldowns
		WHERE actor_id = $1 AND action_name = $2
	`

	sqlUpsertCooldown = `
		INSERT INTO actor_cooldowns (actor_id, action_name, last_used_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (actor_id, action_name) DO UPDATE
		SET last_used_at = EXCLUDED.last_used_at
	`
)
