package practice

import (
	"errors"
	"testing"
)

func testPractice(t *testing.T) *Practice[int] {
	t.Helper()
	p, err := NewPractice(7, testTemplate(), map[Role]EntityID{
		speaker:  10,
		listener: 11,
	})
	if err != nil {
		t.Fatalf("NewPractice: %v", err)
	}
	return p
}

func TestPracticeAccessors(t *testing.T) {
	p := testPractice(t)
	if p.ID() != 7 {
		t.Errorf("ID = %d, want 7", p.ID())
	}
	if p.Template() == nil || p.Template().ID() != 42 {
		t.Errorf("Template does not point back at the instantiated template")
	}
}

func TestPracticeRole(t *testing.T) {
	p := testPractice(t)

	role, err := p.Role(10)
	if err != nil {
		t.Fatalf("Role(10): %v", err)
	}
	if role != speaker {
		t.Errorf("Role(10) = %v, want %v", role, speaker)
	}
}

func TestPracticeRoleUnknownEntity(t *testing.T) {
	p := testPractice(t)

	_, err := p.Role(99)
	if err == nil {
		t.Fatalf("Role for an unbound entity should fail")
	}
	if !errors.Is(err, ErrEntityNotFound) {
		t.Errorf("error = %v, want ErrEntityNotFound", err)
	}
}

func TestPracticeActions(t *testing.T) {
	p := testPractice(t)

	actions, err := p.Actions(10)
	if err != nil {
		t.Fatalf("Actions(10): %v", err)
	}
	want := []string{"action0", "action1"}
	if len(actions) != len(want) {
		t.Fatalf("entity 10 has %d actions, want %d", len(actions), len(want))
	}
	for i, name := range want {
		if actions[i].Name() != name {
			t.Errorf("action %d = %q, want %q", i, actions[i].Name(), name)
		}
	}
}

func TestPracticeActionsPassiveEntity(t *testing.T) {
	p := testPractice(t)

	actions, err := p.Actions(11)
	if err != nil {
		t.Fatalf("Actions(11): %v", err)
	}
	if len(actions) != 0 {
		t.Errorf("passive entity has %d actions, want none", len(actions))
	}
}

func TestPracticeActionsUnknownEntity(t *testing.T) {
	p := testPractice(t)

	_, err := p.Actions(99)
	if !errors.Is(err, ErrEntityNotFound) {
		t.Fatalf("error = %v, want ErrEntityNotFound", err)
	}
}

func TestPracticeRejectsDuplicateEntity(t *testing.T) {
	_, err := NewPractice(8, testTemplate(), map[Role]EntityID{
		speaker:  10,
		listener: 10,
	})
	if !errors.Is(err, ErrDuplicateEntity) {
		t.Fatalf("error = %v, want ErrDuplicateEntity", err)
	}
}

func TestPracticeEntities(t *testing.T) {
	p := testPractice(t)

	entities := p.Entities()
	if len(entities) != 2 || entities[0] != 10 || entities[1] != 11 {
		t.Fatalf("Entities = %v, want [10 11]", entities)
	}
}
