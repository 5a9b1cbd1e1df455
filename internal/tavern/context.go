// Package tavern is demo content for the practice engine: a small tavern
// world whose characters drink, talk, and get bored. It supplies real
// conditions, effects, and utility rules over a concrete context, plus the
// authored practice templates the simulation runs.
package tavern

import "github.com/talgya/social-practice/internal/social/practice"

// Location is where a character currently is inside the tavern.
type Location uint8

const (
	LocationCommonRoom Location = iota
	LocationBar
	LocationDoorstep
)

// LocationName returns a human-readable location label.
func LocationName(l Location) string {
	switch l {
	case LocationCommonRoom:
		return "common room"
	case LocationBar:
		return "bar"
	case LocationDoorstep:
		return "doorstep"
	default:
		return "unknown"
	}
}

// Character is one patron of the tavern. Mood runs -100..100; energy,
// boredom run 0..100; coin is non-negative.
type Character struct {
	ID       practice.EntityID `json:"id"`
	Name     string            `json:"name"`
	Awake    bool              `json:"awake"`
	Mood     int32             `json:"mood"`
	Energy   int32             `json:"energy"`
	Boredom  int32             `json:"boredom"`
	Coin     int32             `json:"coin"`
	Location Location          `json:"location"`
}

// Context is the shared mutable world the tavern's conditions, effects,
// and utility rules operate on.
type Context struct {
	Tick       uint64
	Characters map[practice.EntityID]*Character
}

// NewContext builds a context holding the given characters.
func NewContext(chars ...*Character) *Context {
	ctx := &Context{Characters: make(map[practice.EntityID]*Character, len(chars))}
	for _, c := range chars {
		ctx.Characters[c.ID] = c
	}
	return ctx
}

// Character returns the character with the given id, or nil when absent.
// Conditions treat an absent character as false and effects as a no-op,
// so trees stay total over any context.
func (c *Context) Character(id practice.EntityID) *Character {
	return c.Characters[id]
}

func clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
