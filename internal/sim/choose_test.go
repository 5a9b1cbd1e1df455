package sim

import (
	"testing"

	"github.com/talgya/social-practice/internal/social"
)

func action(name string, available bool, utility social.Utility) social.Action[int] {
	return social.NewAction[int](name,
		social.MockCondition[int]{Verdict: available},
		social.FixedUtility[int](utility),
		social.DoNothing[int](),
	)
}

func TestChoosePicksHighestUtility(t *testing.T) {
	ctx := 0
	chosen, utility, ok := Choose(&ctx, []social.Action[int]{
		action("low", true, 5),
		action("high", true, 40),
		action("mid", true, 20),
	})
	if !ok {
		t.Fatalf("expected a choice")
	}
	if chosen.Name() != "high" || utility != 40 {
		t.Errorf("chose %q (%d), want high (40)", chosen.Name(), utility)
	}
}

func TestChooseSkipsUnavailable(t *testing.T) {
	ctx := 0
	chosen, _, ok := Choose(&ctx, []social.Action[int]{
		action("blocked", false, 100),
		action("open", true, 1),
	})
	if !ok {
		t.Fatalf("expected a choice")
	}
	if chosen.Name() != "open" {
		t.Errorf("chose %q, want open", chosen.Name())
	}
}

func TestChooseTieGoesToFirstListed(t *testing.T) {
	ctx := 0
	chosen, _, ok := Choose(&ctx, []social.Action[int]{
		action("first", true, 10),
		action("second", true, 10),
	})
	if !ok {
		t.Fatalf("expected a choice")
	}
	if chosen.Name() != "first" {
		t.Errorf("chose %q, want first", chosen.Name())
	}
}

func TestChooseNoneAvailable(t *testing.T) {
	ctx := 0
	_, _, ok := Choose(&ctx, []social.Action[int]{
		action("blocked", false, 10),
	})
	if ok {
		t.Fatalf("expected no choice")
	}
	if _, _, ok := Choose(&ctx, nil); ok {
		t.Fatalf("expected no choice from an empty list")
	}
}

func TestChooseNegativeUtilityStillWins(t *testing.T) {
	ctx := 0
	chosen, utility, ok := Choose(&ctx, []social.Action[int]{
		action("worse", true, -20),
		action("bad", true, -5),
	})
	if !ok {
		t.Fatalf("expected a choice")
	}
	if chosen.Name() != "bad" || utility != -5 {
		t.Errorf("chose %q (%d), want bad (-5)", chosen.Name(), utility)
	}
}
