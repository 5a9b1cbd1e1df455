// Package social provides the composable decision primitives for the
// practice engine: conditions gate actions, utility rules score them, and
// effects mutate the world when an action runs. All of them are generic
// over an opaque context type T; the package never inspects the context
// itself, it only threads it through the trees built from these nodes.
package social

// Condition is a pure predicate over a context. Evaluate must not mutate
// the context and must return the same verdict for the same context
// contents, no matter how often it is called.
type Condition[T any] interface {
	Evaluate(ctx *T) bool
}

type trueCondition[T any] struct{}

func (trueCondition[T]) Evaluate(*T) bool { return true }

// True returns a condition that always holds.
func True[T any]() Condition[T] { return trueCondition[T]{} }

type falseCondition[T any] struct{}

func (falseCondition[T]) Evaluate(*T) bool { return false }

// False returns a condition that never holds.
func False[T any]() Condition[T] { return falseCondition[T]{} }

type notCondition[T any] struct {
	child Condition[T]
}

func (n notCondition[T]) Evaluate(ctx *T) bool { return !n.child.Evaluate(ctx) }

// Not negates another condition.
func Not[T any](child Condition[T]) Condition[T] {
	return notCondition[T]{child: child}
}

type andCondition[T any] struct {
	children []Condition[T]
}

func (a andCondition[T]) Evaluate(ctx *T) bool {
	for _, c := range a.children {
		if !c.Evaluate(ctx) {
			return false
		}
	}
	return true
}

// And holds when every child holds. It short-circuits on the first false
// child and holds vacuously with no children.
func And[T any](children ...Condition[T]) Condition[T] {
	return andCondition[T]{children: children}
}

type orCondition[T any] struct {
	children []Condition[T]
}

func (o orCondition[T]) Evaluate(ctx *T) bool {
	for _, c := range o.children {
		if c.Evaluate(ctx) {
			return true
		}
	}
	return false
}

// Or holds when at least one child holds. It short-circuits on the first
// true child and fails with no children.
func Or[T any](children ...Condition[T]) Condition[T] {
	return orCondition[T]{children: children}
}
