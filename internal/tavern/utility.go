package tavern

import (
	"github.com/talgya/social-practice/internal/social"
	"github.com/talgya/social-practice/internal/social/practice"
)

// BoredomUrge scores a character's boredom directly: the more bored they
// are, the more appealing anything diverting becomes. Scores zero for an
// absent character.
type BoredomUrge struct {
	Who practice.EntityID
}

func (u BoredomUrge) CalculateUtility(ctx *Context) social.Utility {
	c := ctx.Character(u.Who)
	if c == nil {
		return 0
	}
	return social.Utility(c.Boredom)
}

// FatigueUrge scores how depleted a character's energy is. Scores zero
// for an absent character.
type FatigueUrge struct {
	Who practice.EntityID
}

func (u FatigueUrge) CalculateUtility(ctx *Context) social.Utility {
	c := ctx.Character(u.Who)
	if c == nil {
		return 0
	}
	return social.Utility(100 - c.Energy)
}
