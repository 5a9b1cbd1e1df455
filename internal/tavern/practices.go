package tavern

import (
	"github.com/talgya/social-practice/internal/social"
	"github.com/talgya/social-practice/internal/social/practice"
)

// Roles used by the tavern's templates.
var (
	RoleSpeaker   = practice.Character(0)
	RoleListener  = practice.Character(1)
	RoleBystander = practice.Character(2)
	RoleBuyer     = practice.Character(3)
	RolePatron    = practice.Character(4)
)

// Template identifiers.
const (
	ConversationTemplateID  uint32 = 1
	RoundOfDrinksTemplateID uint32 = 2
)

// ConversationTemplate defines a conversation between a speaker and a
// listener, with a named bystander role that has no actions of its own.
// Conditions and effects reference the concrete participants, so the
// template is authored per cast.
func ConversationTemplate(speaker, listener practice.EntityID) *practice.Template[Context] {
	roleNames := map[practice.Role]string{
		RoleSpeaker:   "Speaker",
		RoleListener:  "Listener",
		RoleBystander: "Bystander",
	}

	actions := map[practice.Role][]social.Action[Context]{
		RoleSpeaker: {
			social.NewAction[Context]("tell_story",
				social.And[Context](Awake{speaker}, EnergyAbove{speaker, 20}),
				social.Total[Context](
					social.Conditional[Context](BoredomAbove{listener, 40}, 25),
					BoredomUrge{listener},
				),
				social.Sequence[Context](
					AdjustBoredom{listener, -25},
					AdjustMood{listener, 10},
					AdjustBoredom{speaker, -10},
					AdjustEnergy{speaker, -10},
				),
			),
			social.NewAction[Context]("crack_joke",
				Awake{speaker},
				social.Max[Context](BoredomUrge{speaker}, BoredomUrge{listener}),
				social.Sequence[Context](
					AdjustMood{speaker, 5},
					AdjustMood{listener, 5},
					AdjustBoredom{speaker, -5},
					AdjustBoredom{listener, -5},
					AdjustEnergy{speaker, -2},
				),
			),
			social.NewAction[Context]("fall_silent",
				social.True[Context](),
				social.FixedUtility[Context](5),
				social.DoNothing[Context](),
			),
		},
		RoleListener: {
			social.NewAction[Context]("nod_along",
				Awake{listener},
				social.FixedUtility[Context](10),
				social.Sequence[Context](
					AdjustMood{speaker, 2},
					AdjustBoredom{listener, 5},
				),
			),
			social.NewAction[Context]("stifle_yawn",
				BoredomAbove{listener, 60},
				BoredomUrge{listener},
				AdjustEnergy{listener, -5},
			),
		},
	}

	return practice.NewTemplate(ConversationTemplateID, "conversation", roleNames, actions)
}

// NewConversation instantiates a conversation binding the three roles to
// concrete characters.
func NewConversation(id uint32, speaker, listener, bystander practice.EntityID) (*practice.Practice[Context], error) {
	return practice.NewPractice(id, ConversationTemplate(speaker, listener), map[practice.Role]practice.EntityID{
		RoleSpeaker:   speaker,
		RoleListener:  listener,
		RoleBystander: bystander,
	})
}

// RoundCost is what buying a round of drinks costs.
const RoundCost = 5

// RoundOfDrinksTemplate defines a buyer treating a fellow patron.
func RoundOfDrinksTemplate(buyer, patron practice.EntityID) *practice.Template[Context] {
	roleNames := map[practice.Role]string{
		RoleBuyer:  "Buyer",
		RolePatron: "Patron",
	}

	actions := map[practice.Role][]social.Action[Context]{
		RoleBuyer: {
			social.NewAction[Context]("buy_round",
				social.And[Context](
					Awake{buyer},
					HasCoin{buyer, RoundCost},
					AtLocation{buyer, LocationBar},
				),
				social.Total[Context](
					social.Conditional[Context](HasCoin{buyer, 4 * RoundCost}, 15),
					BoredomUrge{buyer},
				),
				social.Sequence[Context](
					SpendCoin{buyer, RoundCost},
					AdjustMood{buyer, 8},
					AdjustMood{patron, 10},
					AdjustBoredom{buyer, -15},
					AdjustBoredom{patron, -10},
				),
			),
			social.NewAction[Context]("head_to_bar",
				social.And[Context](
					Awake{buyer},
					social.Not[Context](AtLocation{buyer, LocationBar}),
					HasCoin{buyer, RoundCost},
				),
				social.Conditional[Context](BoredomAbove{buyer, 20}, 20),
				MoveTo{buyer, LocationBar},
			),
			social.NewAction[Context]("nurse_drink",
				Awake{buyer},
				social.FixedUtility[Context](8),
				social.Sequence[Context](
					AdjustEnergy{buyer, -2},
					AdjustBoredom{buyer, 3},
				),
			),
		},
		RolePatron: {
			social.NewAction[Context]("raise_toast",
				Awake{patron},
				social.Conditional[Context](BoredomAbove{patron, 30}, 12),
				social.Sequence[Context](
					AdjustMood{patron, 4},
					AdjustBoredom{patron, -8},
				),
			),
		},
	}

	return practice.NewTemplate(RoundOfDrinksTemplateID, "round_of_drinks", roleNames, actions)
}

// NewRoundOfDrinks instantiates a round of drinks for a buyer and patron.
func NewRoundOfDrinks(id uint32, buyer, patron practice.EntityID) (*practice.Practice[Context], error) {
	return practice.NewPractice(id, RoundOfDrinksTemplate(buyer, patron), map[practice.Role]practice.EntityID{
		RoleBuyer:  buyer,
		RolePatron: patron,
	})
}
