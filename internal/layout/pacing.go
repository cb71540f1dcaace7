package layout

import (
	"time"

	"snaketerm/internal/game"
)

// MinTickInterval is the floor on the effective tick interval. Terminals
// cannot usefully render faster than this.
const MinTickInterval = 20 * time.Millisecond

// EffectiveTickInterval scales a base interval by the score-progression and
// power-up percents, flooring the result at MinTickInterval.
func EffectiveTickInterval(base time.Duration, progressionPercent, powerUpPercent int) time.Duration {
	combined := progressionPercent * powerUpPercent / 100
	d := base * time.Duration(combined) / 100
	if d < MinTickInterval {
		return MinTickInterval
	}
	return d
}

// TickInterval picks the axis base rate from pending, the direction the
// snake will move on the next tick, then applies the game's current pace
// percents.
func TickInterval(g *game.Game, pending game.Direction) time.Duration {
	h, v := g.Difficulty.BaseTickRates()
	base := h
	if pending.Vertical() {
		base = v
	}
	return EffectiveTickInterval(base, g.DifficultySpeedMultiplierPercent(), g.SpeedMultiplierPercent())
}
