package tavern

import "github.com/talgya/social-practice/internal/social/practice"

// Awake holds when the character is present and awake.
type Awake struct {
	Who practice.EntityID
}

func (a Awake) Evaluate(ctx *Context) bool {
	c := ctx.Character(a.Who)
	return c != nil && c.Awake
}

// HasCoin holds when the character carries at least the given coin.
type HasCoin struct {
	Who     practice.EntityID
	AtLeast int32
}

func (h HasCoin) Evaluate(ctx *Context) bool {
	c := ctx.Character(h.Who)
	return c != nil && c.Coin >= h.AtLeast
}

// EnergyAbove holds when the character's energy exceeds the threshold.
type EnergyAbove struct {
	Who       practice.EntityID
	Threshold int32
}

func (e EnergyAbove) Evaluate(ctx *Context) bool {
	c := ctx.Character(e.Who)
	return c != nil && c.Energy > e.Threshold
}

// BoredomAbove holds when the character's boredom exceeds the threshold.
type BoredomAbove struct {
	Who       practice.EntityID
	Threshold int32
}

func (b BoredomAbove) Evaluate(ctx *Context) bool {
	c := ctx.Character(b.Who)
	return c != nil && c.Boredom > b.Threshold
}

// AtLocation holds when the character is at the given spot.
type AtLocation struct {
	Who   practice.EntityID
	Where Location
}

func (a AtLocation) Evaluate(ctx *Context) bool {
	c := ctx.Character(a.Who)
	return c != nil && c.Location == a.Where
}
