package domain

// Monster is immutable reference data describing one encounterable species.
type Monster struct {
	Name      string   `json:"name"`
	Tier      int      `json:"tier"`
	Attack    int      `json:"attack"`
	Defense   int      `json:"defense"`
	Locations []string `json:"locations"`
	Jobs      []string `json:"jobs"`
}

// EligibleAt reports whether the monster can be encountered at the given
// location by an actor with the given job. An empty jobs list means any job.
func (m *Monster) EligibleAt(locationID, job string) bool {
	if !contains(m.Locations, locationID) {
		return false
	}
	if len(m.Jobs) == 0 {
		return true
	}
	return contains(m.Jobs, job)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// Rarity bounds for loot candidates
const (
	MinRarity = 1
	MaxRarity = 10
)

// LootCandidate is immutable reference data for one droppable item.
type LootCandidate struct {
	ItemName string   `json:"item_name"`
	Rarity   int      `json:"rarity"` // 1 (common) .. 10 (rarest)
	Monsters []string `json:"monsters"`
	Jobs     []string `json:"jobs,omitempty"` // optional job-specific inclusion
}

// DroppedBy reports whether the candidate is associated with the monster.
func (c *LootCandidate) DroppedBy(monsterName string) bool {
	return contains(c.Monsters, monsterName)
}

// AllowedForJob reports whether the candidate may drop for the given job.
// An empty jobs list means any job.
func (c *LootCandidate) AllowedForJob(job string) bool {
	return len(c.Jobs) == 0 || contains(c.Jobs, job)
}

// LootItem is one awarded drop.
type LootItem struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}
