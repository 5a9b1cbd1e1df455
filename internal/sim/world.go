package sim

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/talgya/social-practice/internal/social"
	"github.com/talgya/social-practice/internal/social/practice"
	"github.com/talgya/social-practice/internal/tavern"
)

// maxEvents bounds the in-memory event ring.
const maxEvents = 256

// Decision records one executed action.
type Decision struct {
	Tick     uint64            `json:"tick" db:"tick"`
	Entity   practice.EntityID `json:"entity" db:"entity"`
	Practice uint32            `json:"practice" db:"practice_id"`
	Template string            `json:"template" db:"template_name"`
	Action   string            `json:"action" db:"action_name"`
	Utility  social.Utility    `json:"utility" db:"utility"`
}

// Event is a human-readable notable occurrence.
type Event struct {
	Tick        uint64 `json:"tick" db:"tick"`
	Description string `json:"description" db:"description"`
	Category    string `json:"category" db:"category"`
}

// Status summarizes the running world for observers.
type Status struct {
	Tick       uint64 `json:"tick"`
	Characters int    `json:"characters"`
	Practices  int    `json:"practices"`
	Decisions  uint64 `json:"decisions"`
}

// World owns the tavern context and the live practices over it, and runs
// the decision loop each tick. All access to the context goes through the
// world's lock; the core primitives themselves offer no locking.
type World struct {
	mu        sync.RWMutex
	ctx       *tavern.Context
	practices []*practice.Practice[tavern.Context]
	events    []Event
	pending   []Decision
	pendingEv []Event
	decisions uint64
}

// NewWorld wires a context and its practices into a runnable world.
func NewWorld(ctx *tavern.Context, practices ...*practice.Practice[tavern.Context]) *World {
	return &World{ctx: ctx, practices: practices}
}

// TickMinute advances the world by one tick: every entity of every
// practice, in deterministic order, picks and executes its best available
// action. Entities the practice cannot resolve are skipped, not fatal.
func (w *World) TickMinute(tick uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.ctx.Tick = tick

	for _, p := range w.practices {
		for _, entity := range p.Entities() {
			actions, err := p.Actions(entity)
			if err != nil {
				slog.Warn("skipping entity", "practice", p.ID(), "entity", entity, "error", err)
				continue
			}

			chosen, utility, ok := Choose(w.ctx, actions)
			if !ok {
				continue
			}

			wasAwake := w.awake(entity)
			chosen.Execute(w.ctx)

			w.pending = append(w.pending, Decision{
				Tick:     tick,
				Entity:   entity,
				Practice: p.ID(),
				Template: p.Template().Name(),
				Action:   chosen.Name(),
				Utility:  utility,
			})
			w.decisions++

			if wasAwake && !w.awake(entity) {
				w.record(tick, fmt.Sprintf("%s nods off mid-%s", w.name(entity), p.Template().Name()), "sleep")
			}
		}
	}
}

// TickHour applies the hourly drift: sitting around the tavern is tiring
// and dull, so characters keep having reasons to act.
func (w *World) TickHour(tick uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, c := range w.ctx.Characters {
		if !c.Awake {
			continue
		}
		tavern.AdjustBoredom{Who: c.ID, Delta: 4}.Apply(w.ctx)
		tavern.AdjustEnergy{Who: c.ID, Delta: -1}.Apply(w.ctx)
	}
}

func (w *World) awake(entity practice.EntityID) bool {
	c := w.ctx.Character(entity)
	return c != nil && c.Awake
}

func (w *World) name(entity practice.EntityID) string {
	if c := w.ctx.Character(entity); c != nil {
		return c.Name
	}
	return fmt.Sprintf("entity %d", entity)
}

func (w *World) record(tick uint64, description, category string) {
	ev := Event{Tick: tick, Description: description, Category: category}
	w.events = append(w.events, ev)
	if len(w.events) > maxEvents {
		w.events = w.events[len(w.events)-maxEvents:]
	}
	w.pendingEv = append(w.pendingEv, ev)
}

// DrainDecisions returns the decisions recorded since the last drain and
// clears the buffer. The chronicle flushes through this.
func (w *World) DrainDecisions() []Decision {
	w.mu.Lock()
	defer w.mu.Unlock()

	drained := w.pending
	w.pending = nil
	return drained
}

// DrainEvents returns the events recorded since the last drain and clears
// that buffer. The recent-event ring served to observers is unaffected.
func (w *World) DrainEvents() []Event {
	w.mu.Lock()
	defer w.mu.Unlock()

	drained := w.pendingEv
	w.pendingEv = nil
	return drained
}

// Events returns a copy of the recent event ring.
func (w *World) Events() []Event {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]Event, len(w.events))
	copy(out, w.events)
	return out
}

// Status reports aggregate counters for observers.
func (w *World) Status() Status {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return Status{
		Tick:       w.ctx.Tick,
		Characters: len(w.ctx.Characters),
		Practices:  len(w.practices),
		Decisions:  w.decisions,
	}
}

// Characters returns a value snapshot of every character, ordered by id.
func (w *World) Characters() []tavern.Character {
	w.mu.RLock()
	defer w.mu.RUnlock()

	out := make([]tavern.Character, 0, len(w.ctx.Characters))
	for _, c := range w.ctx.Characters {
		out = append(out, *c)
	}
	slices.SortFunc(out, func(a, b tavern.Character) int {
		return int(a.ID) - int(b.ID)
	})
	return out
}
