package encounter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirefen/GloamBot_Go/internal/domain"
)

func TestSelectEncounter_FiltersByLocationAndJob(t *testing.T) {
	pool := []domain.Monster{
		{Name: "bog_strider", Tier: 1, Locations: []string{"mirefen_bog"}},
		{Name: "hollow_tyrant", Tier: 5, Locations: []string{"thorn_reaches"}},
		{Name: "marsh_wisp", Tier: 1, Locations: []string{"mirefen_bog"}, Jobs: []string{"herbalist"}},
	}

	for seed := int64(0); seed < 100; seed++ {
		r := NewResolver(testConfig(), seed, nil)
		monster := r.selectEncounter(pool, "mirefen_bog", "forager", false)
		if monster != nil {
			assert.Equal(t, "bog_strider", monster.Name, "seed %d", seed)
		}
	}
}

func TestSelectEncounter_EmptyEligiblePool(t *testing.T) {
	pool := []domain.Monster{
		{Name: "hollow_tyrant", Tier: 5, Locations: []string{"thorn_reaches"}},
	}

	for seed := int64(0); seed < 20; seed++ {
		r := NewResolver(testConfig(), seed, nil)
		assert.Nil(t, r.selectEncounter(pool, "mirefen_bog", "forager", false))
		// The gate never rescues an empty pool, gloam moon or not
		assert.Nil(t, r.selectEncounter(pool, "mirefen_bog", "forager", true))
	}
}

func TestSelectEncounter_NoEncounterGateFires(t *testing.T) {
	pool := []domain.Monster{
		{Name: "bog_strider", Tier: 1, Locations: []string{"mirefen_bog"}},
	}

	misses := 0
	for seed := int64(0); seed < 500; seed++ {
		r := NewResolver(testConfig(), seed, nil)
		if r.selectEncounter(pool, "mirefen_bog", "forager", false) == nil {
			misses++
		}
	}

	// 15% configured no-encounter chance: expect misses, but a minority
	assert.Greater(t, misses, 0)
	assert.Less(t, misses, 250)
}

func TestSelectEncounter_GloamMoonBiasesHighTiers(t *testing.T) {
	pool := []domain.Monster{
		{Name: "bog_strider", Tier: 1, Locations: []string{"mirefen_bog"}},
		{Name: "mire_colossus", Tier: 3, Locations: []string{"mirefen_bog"}},
	}

	counts := map[string]int{}
	for seed := int64(0); seed < 500; seed++ {
		r := NewResolver(testConfig(), seed, nil)
		monster := r.selectEncounter(pool, "mirefen_bog", "forager", true)
		require.NotNil(t, monster)
		counts[monster.Name] += 1
	}

	// tier^2 weighting: 9:1 in favor of the colossus
	assert.Greater(t, counts["mire_colossus"], counts["bog_strider"])
}
