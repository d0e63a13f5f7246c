package status

import (
	"context"
	"sync"
	"time"

	"github.com/mirefen/GloamBot_Go/internal/logger"
)

// Provider tracks short-lived boon grants per actor: flat roll adjustments
// and one-shot fated reroll charms. It satisfies encounter.BoostProvider.
type Provider interface {
	RollAdjustment(ctx context.Context, actorID string, roll int) int
	FatedRerollActive(ctx context.Context, actorID string) bool

	GrantBoost(actorID string, adjustment int, ttl time.Duration)
	GrantFatedReroll(actorID string, ttl time.Duration)

	// ConsumeFatedReroll spends the actor's reroll grant. Returns false if
	// no unexpired grant was held.
	ConsumeFatedReroll(actorID string) bool
}

type boostGrant struct {
	adjustment int
	expiresAt  time.Time
}

// MemoryProvider is an in-memory Provider. Grants do not survive restarts;
// they are minute-scale consumables, not persistent state.
type MemoryProvider struct {
	mu      sync.RWMutex
	boosts  map[string]boostGrant
	rerolls map[string]time.Time // actorID -> grant expiry
	nowFn   func() time.Time
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		boosts:  make(map[string]boostGrant),
		rerolls: make(map[string]time.Time),
		nowFn:   time.Now,
	}
}

func (p *MemoryProvider) RollAdjustment(ctx context.Context, actorID string, roll int) int {
	p.mu.RLock()
	grant, ok := p.boosts[actorID]
	p.mu.RUnlock()

	if !ok || !p.nowFn().Before(grant.expiresAt) {
		return roll
	}
	return roll + grant.adjustment
}

func (p *MemoryProvider) FatedRerollActive(ctx context.Context, actorID string) bool {
	p.mu.RLock()
	expiry, ok := p.rerolls[actorID]
	p.mu.RUnlock()

	return ok && p.nowFn().Before(expiry)
}

func (p *MemoryProvider) GrantBoost(actorID string, adjustment int, ttl time.Duration) {
	p.mu.Lock()
	p.boosts[actorID] = boostGrant{adjustment: adjustment, expiresAt: p.nowFn().Add(ttl)}
	p.mu.Unlock()

	logger.Get().Debug("Boost granted", "actorID", actorID, "adjustment", adjustment, "ttl", ttl)
}

func (p *MemoryProvider) GrantFatedReroll(actorID string, ttl time.Duration) {
	p.mu.Lock()
	p.rerolls[actorID] = p.nowFn().Add(ttl)
	p.mu.Unlock()

	logger.Get().Debug("Fated reroll granted", "actorID", actorID, "ttl", ttl)
}

func (p *MemoryProvider) ConsumeFatedReroll(actorID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	expiry, ok := p.rerolls[actorID]
	if !ok {
		return false
	}
	delete(p.rerolls, actorID)
	return p.nowFn().Before(expiry)
}
