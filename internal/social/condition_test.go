package social

import "testing"

func mocks(verdicts ...bool) []Condition[int] {
	cs := make([]Condition[int], len(verdicts))
	for i, v := range verdicts {
		cs[i] = MockCondition[int]{Verdict: v}
	}
	return cs
}

func TestTrueFalse(t *testing.T) {
	ctx := 42
	if !True[int]().Evaluate(&ctx) {
		t.Fatalf("True should hold")
	}
	if False[int]().Evaluate(&ctx) {
		t.Fatalf("False should not hold")
	}
}

func TestNot(t *testing.T) {
	ctx := 42
	if !Not(False[int]()).Evaluate(&ctx) {
		t.Errorf("Not(False) should hold")
	}
	if Not(True[int]()).Evaluate(&ctx) {
		t.Errorf("Not(True) should not hold")
	}
}

func TestNotNot(t *testing.T) {
	ctx := 42
	for _, v := range []bool{true, false} {
		c := MockCondition[int]{Verdict: v}
		if got := Not(Not[int](c)).Evaluate(&ctx); got != c.Evaluate(&ctx) {
			t.Errorf("Not(Not(%v)) = %v, want %v", v, got, v)
		}
	}
}

func TestAnd(t *testing.T) {
	cases := []struct {
		verdicts []bool
		want     bool
	}{
		{[]bool{false, false, false}, false},
		{[]bool{true, false, false}, false},
		{[]bool{false, true, false}, false},
		{[]bool{true, true, false}, false},
		{[]bool{false, false, true}, false},
		{[]bool{true, false, true}, false},
		{[]bool{false, true, true}, false},
		{[]bool{true, true, true}, true},
		{[]bool{true}, true},
		{[]bool{false}, false},
		{nil, true}, // vacuous truth
	}
	ctx := 42
	for _, tc := range cases {
		if got := And(mocks(tc.verdicts...)...).Evaluate(&ctx); got != tc.want {
			t.Errorf("And(%v) = %v, want %v", tc.verdicts, got, tc.want)
		}
	}
}

func TestOr(t *testing.T) {
	cases := []struct {
		verdicts []bool
		want     bool
	}{
		{[]bool{false, false, false}, false},
		{[]bool{true, false, false}, true},
		{[]bool{false, true, false}, true},
		{[]bool{false, false, true}, true},
		{[]bool{true, true, true}, true},
		{[]bool{true}, true},
		{[]bool{false}, false},
		{nil, false}, // empty disjunction fails
	}
	ctx := 42
	for _, tc := range cases {
		if got := Or(mocks(tc.verdicts...)...).Evaluate(&ctx); got != tc.want {
			t.Errorf("Or(%v) = %v, want %v", tc.verdicts, got, tc.want)
		}
	}
}

// countingCondition records evaluations so short-circuiting is observable.
type countingCondition struct {
	verdict bool
	calls   *int
}

func (c countingCondition) Evaluate(*int) bool {
	*c.calls++
	return c.verdict
}

func TestAndShortCircuits(t *testing.T) {
	ctx := 42
	calls := 0
	c := And[int](
		MockCondition[int]{Verdict: false},
		countingCondition{verdict: true, calls: &calls},
	)
	if c.Evaluate(&ctx) {
		t.Fatalf("And with a false child should not hold")
	}
	if calls != 0 {
		t.Errorf("And evaluated a child after the first false, calls = %d", calls)
	}
}

func TestOrShortCircuits(t *testing.T) {
	ctx := 42
	calls := 0
	c := Or[int](
		MockCondition[int]{Verdict: true},
		countingCondition{verdict: false, calls: &calls},
	)
	if !c.Evaluate(&ctx) {
		t.Fatalf("Or with a true child should hold")
	}
	if calls != 0 {
		t.Errorf("Or evaluated a child after the first true, calls = %d", calls)
	}
}
