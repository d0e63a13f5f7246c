package domain

// OutcomeKind discriminates the result of one encounter resolution.
type OutcomeKind string

const (
	OutcomeNoEncounter OutcomeKind = "no_encounter"
	OutcomeVictory     OutcomeKind = "victory"
	OutcomeDamaged     OutcomeKind = "damaged"
	OutcomeKnockedOut  OutcomeKind = "knocked_out"
	// OutcomeRaid signals a heightened-threat monster above the raid tier
	// threshold; orchestration is handled outside the resolver.
	OutcomeRaid OutcomeKind = "raid"
)

// RollTrail records the roll at each modifier stage so callers can render a
// progression trail. Final is always clamped to [1,100].
type RollTrail struct {
	Base          int `json:"base"`
	AfterLocation int `json:"after_location"`
	AfterDebuff   int `json:"after_debuff"`
	Final         int `json:"final"` // post-boost, clamped
}

// EncounterOutcome is the transient result of one resolution pass. It is
// computed purely; applying it to actor state is a separate step.
type EncounterOutcome struct {
	Kind           OutcomeKind `json:"kind"`
	Monster        *Monster    `json:"monster,omitempty"`
	Roll           RollTrail   `json:"roll"`
	AttackSuccess  bool        `json:"attack_success"`
	DefenseSuccess bool        `json:"defense_success"`
	HeartsLost     int         `json:"hearts_lost"`
	LootPermitted  bool        `json:"loot_permitted"`
	Loot           []LootItem  `json:"loot,omitempty"`
	Rerolled       bool        `json:"rerolled"`
}
