package social

// Effect mutates the context when an action executes. Apply may change the
// context arbitrarily; it makes no idempotence promise of its own.
type Effect[T any] interface {
	Apply(ctx *T)
}

type doNothing[T any] struct{}

func (doNothing[T]) Apply(*T) {}

// DoNothing returns an effect that leaves the context untouched.
func DoNothing[T any]() Effect[T] { return doNothing[T]{} }

type sequence[T any] struct {
	children []Effect[T]
}

func (s sequence[T]) Apply(ctx *T) {
	for _, e := range s.children {
		e.Apply(ctx)
	}
}

// Sequence applies each child effect in order, left to right. Later
// children see the mutations made by earlier ones.
func Sequence[T any](children ...Effect[T]) Effect[T] {
	return sequence[T]{children: children}
}
