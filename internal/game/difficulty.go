package game

import (
	"fmt"
	"time"
)

// Difficulty selects a row of the pacing parameter table.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Extreme

	DifficultyCount = 4
)

// Difficulties lists every tier in menu order.
var Difficulties = [DifficultyCount]Difficulty{Easy, Medium, Hard, Extreme}

var difficultyNames = [DifficultyCount]string{"easy", "medium", "hard", "extreme"}

type difficultyParams struct {
	horizontalTick time.Duration
	verticalTick   time.Duration
	refreshChance  float64 // power-up spawn roll after collection and at start
	tickChance     float64 // opportunistic per-tick spawn roll while none exists
	effectTicks    int     // duration of boost/slow effects
	stepPercent    int     // speed-up per 50 points of score
	maxSteps       int     // progression cap
}

var difficultyTable = [DifficultyCount]difficultyParams{
	Easy:    {150 * time.Millisecond, 300 * time.Millisecond, 0.30, 0.020, 120, 2, 15},
	Medium:  {100 * time.Millisecond, 200 * time.Millisecond, 0.25, 0.015, 100, 3, 15},
	Hard:    {60 * time.Millisecond, 120 * time.Millisecond, 0.20, 0.010, 80, 4, 12},
	Extreme: {40 * time.Millisecond, 80 * time.Millisecond, 0.15, 0.005, 60, 5, 10},
}

func (d Difficulty) params() difficultyParams {
	if d < Easy || d >= DifficultyCount {
		return difficultyTable[Medium]
	}
	return difficultyTable[d]
}

// BaseTickRates returns the horizontal and vertical base tick intervals.
func (d Difficulty) BaseTickRates() (horizontal, vertical time.Duration) {
	p := d.params()
	return p.horizontalTick, p.verticalTick
}

// EffectTicks returns the duration of a boost or slow effect in ticks.
func (d Difficulty) EffectTicks() int {
	return d.params().effectTicks
}

func (d Difficulty) String() string {
	if d < Easy || d >= DifficultyCount {
		return "medium"
	}
	return difficultyNames[d]
}

// MarshalText lets Difficulty serialize as its lowercase name in config files.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts the lowercase tier names. Unknown names are an error
// so the caller can fall back to its own default.
func (d *Difficulty) UnmarshalText(text []byte) error {
	for i, name := range difficultyNames {
		if string(text) == name {
			*d = Difficulty(i)
			return nil
		}
	}
	return fmt.Errorf("unknown difficulty %q", text)
}
