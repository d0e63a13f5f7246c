package domain

// EncounterResolvedPayloadV1 is the typed payload for encounter resolution events
type EncounterResolvedPayloadV1 struct {
	ActorID    string      `json:"actor_id"`
	LocationID string      `json:"location_id"`
	Monster    string      `json:"monster,omitempty"`
	Kind       OutcomeKind `json:"kind"`
	FinalRoll  int         `json:"final_roll"`
	HeartsLost int         `json:"hearts_lost"`
	Rerolled   bool        `json:"rerolled"`
	Timestamp  int64       `json:"timestamp"`
}

// LootAwardedPayloadV1 is the typed payload for loot award events
type LootAwardedPayloadV1 struct {
	ActorID   string     `json:"actor_id"`
	Monster   string     `json:"monster"`
	Items     []LootItem `json:"items"`
	Timestamp int64      `json:"timestamp"`
}

// ActorKnockedOutPayloadV1 is the typed payload for knockout events
type ActorKnockedOutPayloadV1 struct {
	ActorID    string `json:"actor_id"`
	Monster    string `json:"monster,omitempty"`
	LocationID string `json:"location_id,omitempty"`
	Timestamp  int64  `json:"timestamp"`
}

// ActorHealedPayloadV1 is the typed payload for heal events
type ActorHealedPayloadV1 struct {
	ActorID   string `json:"actor_id"`
	Hearts    int    `json:"hearts"`
	Revived   bool   `json:"revived"`
	Timestamp int64  `json:"timestamp"`
}
