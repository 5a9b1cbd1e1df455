package social

// Fixtures shared by tests in this package and in packages that build on
// it. They use a plain int context so effects have something to add to.

// MockCondition evaluates to a fixed verdict regardless of context.
type MockCondition[T any] struct {
	Verdict bool
}

func (m MockCondition[T]) Evaluate(*T) bool { return m.Verdict }

// MockEffect adds a fixed delta to an int context.
type MockEffect struct {
	Delta int
}

func (m MockEffect) Apply(ctx *int) { *ctx += m.Delta }

// MockAction is a named, always-available, zero-utility action whose
// effect does nothing. Template and practice tests use it where only the
// name matters.
type MockAction struct {
	ActionName string
}

func (m MockAction) Name() string { return m.ActionName }

func (m MockAction) IsAvailable(*int) bool { return true }

func (m MockAction) Utility(*int) Utility { return 0 }

func (m MockAction) Execute(*int) {}
