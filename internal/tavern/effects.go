package tavern

import "github.com/talgya/social-practice/internal/social/practice"

// Effects on an absent character are no-ops: a character can leave the
// world between scoring and execution without breaking a tree.

// AdjustMood shifts a character's mood, clamped to -100..100.
type AdjustMood struct {
	Who   practice.EntityID
	Delta int32
}

func (e AdjustMood) Apply(ctx *Context) {
	if c := ctx.Character(e.Who); c != nil {
		c.Mood = clamp(c.Mood+e.Delta, -100, 100)
	}
}

// AdjustEnergy shifts a character's energy, clamped to 0..100. A
// character whose energy reaches zero falls asleep.
type AdjustEnergy struct {
	Who   practice.EntityID
	Delta int32
}

func (e AdjustEnergy) Apply(ctx *Context) {
	c := ctx.Character(e.Who)
	if c == nil {
		return
	}
	c.Energy = clamp(c.Energy+e.Delta, 0, 100)
	if c.Energy == 0 {
		c.Awake = false
	}
}

// AdjustBoredom shifts a character's boredom, clamped to 0..100.
type AdjustBoredom struct {
	Who   practice.EntityID
	Delta int32
}

func (e AdjustBoredom) Apply(ctx *Context) {
	if c := ctx.Character(e.Who); c != nil {
		c.Boredom = clamp(c.Boredom+e.Delta, 0, 100)
	}
}

// SpendCoin removes coin from a character, never below zero.
type SpendCoin struct {
	Who    practice.EntityID
	Amount int32
}

func (e SpendCoin) Apply(ctx *Context) {
	c := ctx.Character(e.Who)
	if c == nil {
		return
	}
	c.Coin -= e.Amount
	if c.Coin < 0 {
		c.Coin = 0
	}
}

// MoveTo relocates a character inside the tavern.
type MoveTo struct {
	Who   practice.EntityID
	Where Location
}

func (e MoveTo) Apply(ctx *Context) {
	if c := ctx.Character(e.Who); c != nil {
		c.Location = e.Where
	}
}
