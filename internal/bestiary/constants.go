package bestiary

import "time"

// Pool cache sizing. The TTL bounds staleness if data files are ever
// hot-reloaded.
const (
	PoolCacheSize = 128
	PoolCacheTTL  = 10 * time.Minute
)

// Monster tier bounds
const (
	MinMonsterTier = 1
	MaxMonsterTier = 5
)
