package bestiary

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mirefen/GloamBot_Go/internal/domain"
)

// Provider exposes read-only bestiary reference data to the game services.
type Provider interface {
	// MonstersAt returns the monsters that can appear at a location for a
	// job. The slice is safe to retain; it is rebuilt per cache miss.
	MonstersAt(locationID, job string) []domain.Monster
	// Candidates returns the full loot candidate table.
	Candidates() []domain.LootCandidate
	MonsterByName(name string) (*domain.Monster, error)
	// DisplayName renders an internal snake_case name for chat output.
	DisplayName(internalName string) string
}

// monstersFile is the on-disk shape of monsters.json
type monstersFile struct {
	Version  string           `json:"version"`
	Monsters []domain.Monster `json:"monsters"`
}

// lootFile is the on-disk shape of loot_tables.json
type lootFile struct {
	Version    string                 `json:"version"`
	Candidates []domain.LootCandidate `json:"candidates"`
}

// Loader is a file-backed Provider. Reference data is immutable for the
// process lifetime; filtered pools are memoized in a small LRU.
type Loader struct {
	monsters   []domain.Monster
	byName     map[string]*domain.Monster
	candidates []domain.LootCandidate
	poolCache  *expirable.LRU[string, []domain.Monster]
	caser      cases.Caser
}

// NewLoader reads and validates the bestiary data files.
func NewLoader(monstersPath, lootPath string) (*Loader, error) {
	mf, err := readMonstersFile(monstersPath)
	if err != nil {
		return nil, err
	}

	lf, err := readLootFile(lootPath)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*domain.Monster, len(mf.Monsters))
	for i := range mf.Monsters {
		byName[mf.Monsters[i].Name] = &mf.Monsters[i]
	}

	return &Loader{
		monsters:   mf.Monsters,
		byName:     byName,
		candidates: lf.Candidates,
		poolCache:  expirable.NewLRU[string, []domain.Monster](PoolCacheSize, nil, PoolCacheTTL),
		caser:      cases.Title(language.English),
	}, nil
}

func readMonstersFile(path string) (*monstersFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read monsters file: %w", err)
	}

	var mf monstersFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse monsters file: %w", err)
	}

	if len(mf.Monsters) == 0 {
		return nil, fmt.Errorf("monsters file defines no monsters")
	}
	for _, m := range mf.Monsters {
		if m.Name == "" {
			return nil, fmt.Errorf("monster with empty name")
		}
		if m.Tier < MinMonsterTier || m.Tier > MaxMonsterTier {
			return nil, fmt.Errorf("monster %s: tier %d out of range [%d,%d]", m.Name, m.Tier, MinMonsterTier, MaxMonsterTier)
		}
		if len(m.Locations) == 0 {
			return nil, fmt.Errorf("monster %s: no locations", m.Name)
		}
	}
	return &mf, nil
}

func readLootFile(path string) (*lootFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read loot file: %w", err)
	}

	var lf lootFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return nil, fmt.Errorf("failed to parse loot file: %w", err)
	}

	for _, c := range lf.Candidates {
		if c.ItemName == "" {
			return nil, fmt.Errorf("loot candidate with empty item name")
		}
		if c.Rarity < domain.MinRarity || c.Rarity > domain.MaxRarity {
			return nil, fmt.Errorf("loot candidate %s: rarity %d out of range [%d,%d]", c.ItemName, c.Rarity, domain.MinRarity, domain.MaxRarity)
		}
		if len(c.Monsters) == 0 {
			return nil, fmt.Errorf("loot candidate %s: no source monsters", c.ItemName)
		}
	}
	return &lf, nil
}

func (l *Loader) MonstersAt(locationID, job string) []domain.Monster {
	key := locationID + "|" + job
	if pool, ok := l.poolCache.Get(key); ok {
		return pool
	}

	var pool []domain.Monster
	for _, m := range l.monsters {
		if m.EligibleAt(locationID, job) {
			pool = append(pool, m)
		}
	}

	l.poolCache.Add(key, pool)
	return pool
}

func (l *Loader) Candidates() []domain.LootCandidate {
	return l.candidates
}

func (l *Loader) MonsterByName(name string) (*domain.Monster, error) {
	m, ok := l.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownMonster, name)
	}
	return m, nil
}

func (l *Loader) DisplayName(internalName string) string {
	return l.caser.String(strings.ReplaceAll(internalName, "_", " "))
}
