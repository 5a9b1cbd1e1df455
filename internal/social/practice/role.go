// Package practice scopes actions to participants. A Template names the
// roles of a social scenario and the actions each role may take; a
// Practice is a live occurrence of a template with concrete entities
// bound to its roles.
package practice

import "fmt"

// EntityID identifies a simulation entity bound into a practice.
type EntityID uint32

// Kind tags the variant of a Role. Character is the only variant today;
// the tag leaves room for non-character slots (institutions, props).
type Kind uint8

const (
	KindCharacter Kind = iota
)

// Role identifies a participant slot in a social scenario. It is a plain
// comparable value: equal kind and id mean the same role, and it can key
// a map directly.
type Role struct {
	Kind Kind
	ID   uint32
}

// Character returns a character role with the given id.
func Character(id uint32) Role {
	return Role{Kind: KindCharacter, ID: id}
}

func (r Role) String() string {
	switch r.Kind {
	case KindCharacter:
		return fmt.Sprintf("character/%d", r.ID)
	default:
		return fmt.Sprintf("role(%d)/%d", r.Kind, r.ID)
	}
}
