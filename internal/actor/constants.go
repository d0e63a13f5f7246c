package actor

// Defaults applied when a new actor registers
const (
	DefaultMaxHearts  = 10
	DefaultMaxStamina = 10
	DefaultAttack     = 0
	DefaultDefense    = 0
	DefaultJob        = "drifter"
)

// Log messages
const (
	LogMsgActorRegistered = "Actor registered"
	LogMsgDamageApplied   = "Damage applied"
	LogMsgActorKnockedOut = "Actor knocked out"
	LogMsgActorHealed     = "Actor healed"
	LogMsgLootAwarded     = "Loot awarded"
)
