package venture

// Gloam moon schedule: the moon rises every cycle, measured in days since
// the Unix epoch.
const GloamMoonCycleDays = 29

// Player-facing message formats
const (
	MsgNoEncounter  = "%s ventures into %s... and finds nothing but mist."
	MsgVictoryLoot  = "%s defeats the %s in %s! (roll %d) Loot: %s"
	MsgVictoryEmpty = "%s defeats the %s in %s! (roll %d) It drops nothing."
	MsgDamaged      = "The %s in %s mauls %s for %d heart(s). (roll %d)"
	MsgKnockedOut   = "%s is knocked out by the %s in %s! Someone bring a tonic."
	MsgRaid         = "A gloam-touched %s looms over %s. The raid horn sounds!"
	MsgAlreadyDown  = "%s is knocked out and cannot venture. Heal up first."
	MsgRerollNote   = " A fated charm twisted the threads of this encounter."
)

// Log messages
const (
	LogMsgVentureCalled   = "HandleVenture called"
	LogMsgVentureResolved = "Venture resolved"
	LogMsgRerollConsumed  = "Fated reroll consumed"
	LogMsgLootAwardFailed = "Failed to award loot"
	LogMsgHealCalled      = "HandleHeal called"
)
