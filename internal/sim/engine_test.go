package sim

import "testing"

func TestEngineStepLayers(t *testing.T) {
	e := NewEngine()

	var ticks, hours, days int
	e.OnTick = func(uint64) { ticks++ }
	e.OnHour = func(uint64) { hours++ }
	e.OnDay = func(uint64) { days++ }

	for i := 0; i < TicksPerSimDay; i++ {
		e.step()
	}

	if ticks != TicksPerSimDay {
		t.Errorf("OnTick fired %d times, want %d", ticks, TicksPerSimDay)
	}
	if hours != TicksPerSimDay/TicksPerSimHour {
		t.Errorf("OnHour fired %d times, want %d", hours, TicksPerSimDay/TicksPerSimHour)
	}
	if days != 1 {
		t.Errorf("OnDay fired %d times, want 1", days)
	}
	if e.Tick != TicksPerSimDay {
		t.Errorf("Tick = %d, want %d", e.Tick, TicksPerSimDay)
	}
}

func TestEngineStepNilCallbacks(t *testing.T) {
	e := NewEngine()
	// No callbacks wired — stepping across every boundary must not panic.
	for i := 0; i < TicksPerSimDay; i++ {
		e.step()
	}
}
