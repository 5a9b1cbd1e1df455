package social

import "testing"

func TestDoNothing(t *testing.T) {
	ctx := 42
	DoNothing[int]().Apply(&ctx)
	if ctx != 42 {
		t.Fatalf("DoNothing changed the context to %d", ctx)
	}
}

func TestSequence(t *testing.T) {
	cases := []struct {
		name   string
		deltas []int
		want   int
	}{
		{"two effects", []int{2, 34}, 78},
		{"swapped order", []int{34, 2}, 78},
		{"single", []int{-7}, 35},
		{"empty", nil, 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			effects := make([]Effect[int], len(tc.deltas))
			for i, d := range tc.deltas {
				effects[i] = MockEffect{Delta: d}
			}
			ctx := 42
			Sequence(effects...).Apply(&ctx)
			if ctx != tc.want {
				t.Errorf("context = %d, want %d", ctx, tc.want)
			}
		})
	}
}

// appendEffect records its tag, so application order is observable where
// the effects do not commute.
type appendEffect struct {
	tag  string
	into *[]string
}

func (e appendEffect) Apply(*int) { *e.into = append(*e.into, e.tag) }

func TestSequenceOrder(t *testing.T) {
	var got []string
	ctx := 0
	Sequence[int](
		appendEffect{tag: "first", into: &got},
		appendEffect{tag: "second", into: &got},
		appendEffect{tag: "third", into: &got},
	).Apply(&ctx)

	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("applied %d effects, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("application %d = %q, want %q", i, got[i], want[i])
		}
	}
}
