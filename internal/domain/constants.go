package domain

import "time"

// Supported chat platforms
const (
	PlatformDiscord = "discord"
	PlatformTwitch  = "twitch"
)

// Tracked actions for cooldown enforcement
const (
	ActionVenture = "venture"
	ActionHeal    = "heal"
)

// Default cooldown durations per action
const (
	VentureCooldownDuration = 30 * time.Minute
	HealCooldownDuration    = 10 * time.Minute
)

// Event type names published on the bus
const (
	EventTypeEncounterResolved = "encounter.resolved"
	EventTypeLootAwarded       = "loot.awarded"
	EventTypeActorKnockedOut   = "actor.knocked_out"
	EventTypeActorHealed       = "actor.healed"
	EventTypeFatedReroll       = "encounter.fated_reroll"
)

// ValidPlatform reports whether the platform name is supported.
func ValidPlatform(platform string) bool {
	return platform == PlatformDiscord || platform == PlatformTwitch
}
