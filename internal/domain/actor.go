package domain

import "time"

// Actor represents a registered player character
type Actor struct {
	ID         string    `json:"id"`
	DiscordID  string    `json:"discord_id"`
	Username   string    `json:"username"`
	Job        string    `json:"job"`
	Hearts     int       `json:"hearts"`
	MaxHearts  int       `json:"max_hearts"`
	Stamina    int       `json:"stamina"`
	MaxStamina int       `json:"max_stamina"`
	Attack     int       `json:"attack"`
	Defense    int       `json:"defense"`
	KnockedOut bool      `json:"knocked_out"`
	Immune     bool      `json:"immune"` // moderator/admin actors skip state mutation
	Buff       *Buff     `json:"buff,omitempty"`
	Debuff     *Debuff   `json:"debuff,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Buff is a temporary positive modifier granted to an actor.
// Category determines which part of the pipeline consumes the magnitude.
type Buff struct {
	Category  string    `json:"category"`
	Magnitude float64   `json:"magnitude"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Buff categories
const (
	BuffCategoryRoll    = "roll"
	BuffCategoryAttack  = "attack"
	BuffCategoryDefense = "defense"
)

// Debuff is a persistent negative-status condition with an expiry.
type Debuff struct {
	Active    bool      `json:"active"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsDebuffed reports whether the actor carries an active, unexpired debuff.
func (a *Actor) IsDebuffed(now time.Time) bool {
	return a.Debuff != nil && a.Debuff.Active && now.Before(a.Debuff.ExpiresAt)
}

// BuffMagnitude returns the magnitude of an unexpired buff in the given
// category, or 0 if none is active.
func (a *Actor) BuffMagnitude(category string, now time.Time) float64 {
	if a.Buff == nil || a.Buff.Category != category || !now.Before(a.Buff.ExpiresAt) {
		return 0
	}
	return a.Buff.Magnitude
}

// AttackTotal is the actor's effective attack stat including buffs.
func (a *Actor) AttackTotal(now time.Time) int {
	return a.Attack + int(a.BuffMagnitude(BuffCategoryAttack, now))
}

// DefenseTotal is the actor's effective defense stat including buffs.
func (a *Actor) DefenseTotal(now time.Time) int {
	return a.Defense + int(a.BuffMagnitude(BuffCategoryDefense, now))
}
