// Package village generates the demo cast using layered simplex noise, so
// a seed fully determines every character's starting disposition.
package village

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/social-practice/internal/social/practice"
	"github.com/talgya/social-practice/internal/tavern"
)

// GenConfig holds cast generation parameters.
type GenConfig struct {
	Seed  int64
	Count int
}

// DefaultGenConfig returns a small cast suitable for the demo loop.
func DefaultGenConfig() GenConfig {
	return GenConfig{Seed: 42, Count: 6}
}

var givenNames = []string{
	"Odo", "Brena", "Tam", "Iseld", "Garrick", "Maren",
	"Pell", "Roswyn", "Corben", "Hetty", "Aldous", "Nyssa",
}

// Generate creates a tavern context populated with Count characters whose
// dispositions are sampled from independent noise layers. Entity ids are
// 1..Count.
func Generate(cfg GenConfig) *tavern.Context {
	// Independent layers per disposition, offset seeds like terrain layers.
	moodNoise := opensimplex.NewNormalized(cfg.Seed)
	energyNoise := opensimplex.NewNormalized(cfg.Seed + 1)
	boredomNoise := opensimplex.NewNormalized(cfg.Seed + 2)
	coinNoise := opensimplex.NewNormalized(cfg.Seed + 3)

	chars := make([]*tavern.Character, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		// Sample each character at its own point along the x axis; y
		// separates the octave stacks from ever collapsing to one line.
		x := float64(i) * 1.7

		mood := octaveNoise(moodNoise, x, 0.5, 3, 0.11, 0.5)
		energy := octaveNoise(energyNoise, x, 0.5, 3, 0.09, 0.5)
		boredom := octaveNoise(boredomNoise, x, 0.5, 2, 0.13, 0.5)
		coin := octaveNoise(coinNoise, x, 0.5, 2, 0.07, 0.5)

		name := givenNames[i%len(givenNames)]
		if i >= len(givenNames) {
			name = fmt.Sprintf("%s %d", name, i/len(givenNames)+1)
		}

		loc := tavern.LocationCommonRoom
		if coin > 0.55 {
			loc = tavern.LocationBar
		}

		chars = append(chars, &tavern.Character{
			ID:       practice.EntityID(i + 1),
			Name:     name,
			Awake:    true,
			Mood:     int32((mood - 0.5) * 80),
			Energy:   int32(40 + energy*60),
			Boredom:  int32(boredom * 100),
			Coin:     int32(5 + coin*40),
			Location: loc,
		})
	}

	return tavern.NewContext(chars...)
}

func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
