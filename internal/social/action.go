package social

// Action is a named unit of behavior: a condition gates it, a utility rule
// scores it, an effect carries it out. Execute does not re-check
// availability; deciding whether an unavailable action may run is the
// caller's job.
type Action[T any] interface {
	// Name identifies the action in logs and decision records.
	Name() string

	// IsAvailable reports whether the action can currently be taken.
	IsAvailable(ctx *T) bool

	// Utility scores how desirable taking the action would be right now.
	Utility(ctx *T) Utility

	// Execute applies the action's effect to the context.
	Execute(ctx *T)
}

// BasicAction composes a condition, a utility rule, and an effect under a
// name. It carries no logic of its own beyond delegation, so any of the
// three parts can be swapped without touching the others.
type BasicAction[T any] struct {
	name      string
	condition Condition[T]
	rule      UtilityRule[T]
	effect    Effect[T]
}

// NewAction bundles a condition, utility rule, and effect into an action.
func NewAction[T any](name string, condition Condition[T], rule UtilityRule[T], effect Effect[T]) *BasicAction[T] {
	return &BasicAction[T]{
		name:      name,
		condition: condition,
		rule:      rule,
		effect:    effect,
	}
}

func (a *BasicAction[T]) Name() string { return a.name }

func (a *BasicAction[T]) IsAvailable(ctx *T) bool { return a.condition.Evaluate(ctx) }

func (a *BasicAction[T]) Utility(ctx *T) Utility { return a.rule.CalculateUtility(ctx) }

func (a *BasicAction[T]) Execute(ctx *T) { a.effect.Apply(ctx) }
