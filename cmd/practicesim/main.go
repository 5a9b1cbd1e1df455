// Command practicesim runs the tavern demo: characters bound into social
// practices pick their best available action each tick, and every decision
// is chronicled to SQLite.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/talgya/social-practice/internal/api"
	"github.com/talgya/social-practice/internal/chronicle"
	"github.com/talgya/social-practice/internal/config"
	"github.com/talgya/social-practice/internal/sim"
	"github.com/talgya/social-practice/internal/social/practice"
	"github.com/talgya/social-practice/internal/tavern"
	"github.com/talgya/social-practice/internal/village"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// ── Chronicle ─────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
	db, err := chronicle.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open chronicle", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	runID, err := db.CreateRun(cfg.Seed)
	if err != nil {
		slog.Error("failed to create run", "error", err)
		os.Exit(1)
	}
	slog.Info("chronicle opened", "path", cfg.DBPath, "run", runID)

	// ── Cast ──────────────────────────────────────────────────────────
	ctx := village.Generate(village.GenConfig{Seed: cfg.Seed, Count: cfg.Characters})
	for _, c := range ctx.Characters {
		slog.Info("character",
			"id", c.ID,
			"name", c.Name,
			"mood", c.Mood,
			"energy", c.Energy,
			"boredom", c.Boredom,
			"coin", c.Coin,
			"location", tavern.LocationName(c.Location),
		)
	}

	// ── Practices ─────────────────────────────────────────────────────
	world, err := buildWorld(ctx, cfg.Characters)
	if err != nil {
		slog.Error("failed to author practices", "error", err)
		os.Exit(1)
	}

	// ── Engine ────────────────────────────────────────────────────────
	eng := sim.NewEngine()
	eng.Interval = cfg.TickInterval
	eng.Speed = cfg.Speed

	eng.OnTick = world.TickMinute
	eng.OnHour = func(tick uint64) {
		world.TickHour(tick)
		flush(db, runID, world)
	}
	eng.OnDay = func(tick uint64) {
		st := world.Status()
		slog.Info("day passed", "tick", tick, "decisions", st.Decisions)
	}

	// ── HTTP API ──────────────────────────────────────────────────────
	apiServer := &api.Server{World: world, Eng: eng, Addr: cfg.HTTPAddr, RunID: runID}
	apiServer.Start()

	// ── Start ─────────────────────────────────────────────────────────
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Info("shutdown requested")
		eng.Stop()
	}()

	eng.Run()

	// Final flush so nothing decided since the last hour is lost.
	flush(db, runID, world)
	st := world.Status()
	slog.Info("run complete", "run", runID, "tick", st.Tick, "decisions", st.Decisions)
}

// buildWorld groups the cast into practices: threes become conversations,
// a leftover pair becomes a round of drinks, a leftover single sits out.
func buildWorld(ctx *tavern.Context, count int) (*sim.World, error) {
	var practices []*practice.Practice[tavern.Context]
	nextID := uint32(1)

	i := 1
	for ; i+2 <= count; i += 3 {
		conv, err := tavern.NewConversation(nextID,
			practice.EntityID(i), practice.EntityID(i+1), practice.EntityID(i+2))
		if err != nil {
			return nil, err
		}
		practices = append(practices, conv)
		nextID++
	}
	if count-i == 1 {
		round, err := tavern.NewRoundOfDrinks(nextID,
			practice.EntityID(i), practice.EntityID(i+1))
		if err != nil {
			return nil, err
		}
		practices = append(practices, round)
	} else if count-i == 0 {
		slog.Info("character sits this one out", "id", i)
	}

	slog.Info("practices authored", "count", len(practices))
	return sim.NewWorld(ctx, practices...), nil
}

// flush drains pending decisions and events into the chronicle.
func flush(db *chronicle.DB, runID string, world *sim.World) {
	if err := db.AppendDecisions(runID, world.DrainDecisions()); err != nil {
		slog.Error("decision flush failed", "error", err)
	}
	if err := db.AppendEvents(runID, world.DrainEvents()); err != nil {
		slog.Error("event flush failed", "error", err)
	}
}
