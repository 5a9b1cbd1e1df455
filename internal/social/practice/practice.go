package practice

import (
	"fmt"
	"maps"
	"slices"

	"github.com/talgya/social-practice/internal/social"
)

// Practice is a live occurrence of a template: each role is occupied by
// exactly one entity. Bindings are fixed at construction; a practice is a
// static lookup table, not a process. It holds the template by reference
// and never copies its data.
type Practice[T any] struct {
	id       uint32
	template *Template[T]
	cast     map[Role]EntityID
	byEntity map[EntityID]Role
}

// NewPractice instantiates a template with a cast binding each role to an
// entity. A cast that binds the same entity to more than one role is a
// misconfiguration and is rejected with ErrDuplicateEntity, so the
// reverse lookup in Role can never be ambiguous.
func NewPractice[T any](id uint32, template *Template[T], cast map[Role]EntityID) (*Practice[T], error) {
	byEntity := make(map[EntityID]Role, len(cast))
	for role, entity := range cast {
		if _, taken := byEntity[entity]; taken {
			return nil, fmt.Errorf("practice %d: %w: entity %d", id, ErrDuplicateEntity, entity)
		}
		byEntity[entity] = role
	}
	return &Practice[T]{
		id:       id,
		template: template,
		cast:     maps.Clone(cast),
		byEntity: byEntity,
	}, nil
}

// ID returns the practice's identifier.
func (p *Practice[T]) ID() uint32 { return p.id }

// Template returns the template this practice instantiates.
func (p *Practice[T]) Template() *Template[T] { return p.template }

// Role returns the role an entity occupies in this practice, or
// ErrEntityNotFound when the entity is not part of it.
func (p *Practice[T]) Role(entity EntityID) (Role, error) {
	role, ok := p.byEntity[entity]
	if !ok {
		return Role{}, fmt.Errorf("practice %d: %w: entity %d", p.id, ErrEntityNotFound, entity)
	}
	return role, nil
}

// Actions returns the actions available to an entity through its role, in
// the template's authoring order. The entity-not-found failure from Role
// propagates unchanged.
func (p *Practice[T]) Actions(entity EntityID) ([]social.Action[T], error) {
	role, err := p.Role(entity)
	if err != nil {
		return nil, err
	}
	return p.template.Actions(role), nil
}

// Entities returns all bound entities in ascending order.
func (p *Practice[T]) Entities() []EntityID {
	entities := slices.Collect(maps.Keys(p.byEntity))
	slices.Sort(entities)
	return entities
}
