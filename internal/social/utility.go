package social

import (
	"fmt"
	"math"
)

// Utility is a whole-number desirability score. Higher is better; negative
// scores are allowed.
type Utility int32

// UtilityRule scores a context. CalculateUtility is pure: it must not
// mutate the context.
type UtilityRule[T any] interface {
	CalculateUtility(ctx *T) Utility
}

type fixedUtility[T any] struct {
	value Utility
}

func (f fixedUtility[T]) CalculateUtility(*T) Utility { return f.value }

// FixedUtility returns a rule that always scores the same value.
func FixedUtility[T any](value Utility) UtilityRule[T] {
	return fixedUtility[T]{value: value}
}

type conditionalUtility[T any] struct {
	condition Condition[T]
	value     Utility
}

func (c conditionalUtility[T]) CalculateUtility(ctx *T) Utility {
	if c.condition.Evaluate(ctx) {
		return c.value
	}
	return 0
}

// Conditional returns value when the condition holds and zero otherwise.
// The fallback is fixed at zero, not configurable.
func Conditional[T any](condition Condition[T], value Utility) UtilityRule[T] {
	return conditionalUtility[T]{condition: condition, value: value}
}

type totalUtility[T any] struct {
	rules []UtilityRule[T]
}

func (t totalUtility[T]) CalculateUtility(ctx *T) Utility {
	var sum int64
	for _, r := range t.rules {
		sum += int64(r.CalculateUtility(ctx))
		if sum > math.MaxInt32 || sum < math.MinInt32 {
			panic(fmt.Sprintf("social: utility total overflows at %d", sum))
		}
	}
	return Utility(sum)
}

// Total sums the scores of all child rules. An empty rule list sums to
// zero. A running sum that leaves the Utility range is a fatal authoring
// fault and panics rather than wrapping around.
func Total[T any](rules ...UtilityRule[T]) UtilityRule[T] {
	return totalUtility[T]{rules: rules}
}

type maxUtility[T any] struct {
	rules []UtilityRule[T]
}

func (m maxUtility[T]) CalculateUtility(ctx *T) Utility {
	var best Utility
	for i, r := range m.rules {
		u := r.CalculateUtility(ctx)
		if i == 0 || u > best {
			best = u
		}
	}
	return best
}

// Max returns the highest score among the child rules. An empty rule list
// scores zero; callers that need "no rules configured" to be
// distinguishable from a legitimate zero must check before wrapping.
func Max[T any](rules ...UtilityRule[T]) UtilityRule[T] {
	return maxUtility[T]{rules: rules}
}
