package practice

import (
	"fmt"
	"maps"
	"slices"

	"github.com/talgya/social-practice/internal/social"
)

// Template is a reusable scenario definition: display names for its roles
// and an ordered action list per role. The two mappings are independent —
// a role may carry a name but no actions (a purely passive listener) or
// actions without a name. Templates are immutable after construction and
// must outlive every Practice built from them.
type Template[T any] struct {
	id        uint32
	name      string
	roleNames map[Role]string
	actions   map[Role][]social.Action[T]
}

// NewTemplate builds a template from its role-name and action mappings.
// Both maps and the action slices are copied, so the caller's maps can be
// reused or mutated afterwards.
func NewTemplate[T any](id uint32, name string, roleNames map[Role]string, actions map[Role][]social.Action[T]) *Template[T] {
	owned := make(map[Role][]social.Action[T], len(actions))
	for role, list := range actions {
		owned[role] = slices.Clone(list)
	}
	return &Template[T]{
		id:        id,
		name:      name,
		roleNames: maps.Clone(roleNames),
		actions:   owned,
	}
}

// ID returns the template's identifier.
func (t *Template[T]) ID() uint32 { return t.id }

// Name returns the template's name.
func (t *Template[T]) Name() string { return t.name }

// Actions returns the actions configured for a role, in authoring order.
// A role with no configured actions yields an empty list; that is a
// normal state, not an error. Authoring order is load-bearing: nothing
// else ranks actions implicitly, and it breaks utility ties downstream.
func (t *Template[T]) Actions(role Role) []social.Action[T] {
	return t.actions[role]
}

// Roles returns every role that has a display name, sorted by kind then
// id so the listing is deterministic.
func (t *Template[T]) Roles() []Role {
	roles := slices.Collect(maps.Keys(t.roleNames))
	slices.SortFunc(roles, func(a, b Role) int {
		if a.Kind != b.Kind {
			return int(a.Kind) - int(b.Kind)
		}
		return int(a.ID) - int(b.ID)
	})
	return roles
}

// RoleName returns the display name of a role. A role that was never
// registered yields ErrRoleNotFound.
func (t *Template[T]) RoleName(role Role) (string, error) {
	name, ok := t.roleNames[role]
	if !ok {
		return "", fmt.Errorf("template %q: %w: %s", t.name, ErrRoleNotFound, role)
	}
	return name, nil
}
