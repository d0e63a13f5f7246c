package config

import "time"

const (
	// Configuration file paths
	ConfigPathEncounters = "configs/encounters.json"
	ConfigPathMonsters   = "configs/bestiary/monsters.json"
	ConfigPathLootTables = "configs/bestiary/loot_tables.json"

	// JSON schemas the data files are validated against at startup
	SchemaPathEncounters = "configs/schemas/encounters.schema.json"
	SchemaPathMonsters   = "configs/schemas/monsters.schema.json"
	SchemaPathLootTables = "configs/schemas/loot_tables.schema.json"
)

// Database pool defaults
const (
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute
)
