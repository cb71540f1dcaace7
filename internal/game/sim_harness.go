package game

import (
	"fmt"
	"math/rand"
)

// Sim is a headless harness around Game. It has no terminal dependency,
// supports deterministic seeding and direct state overrides, and records
// structured events to a SimLog. Used by invariant tests and cmd/headless-sim.
type Sim struct {
	Game   *Game
	SimLog *SimLog

	difficulty Difficulty
	width      int
	height     int
	highScore  int
	rng        *rand.Rand
	steer      bool
	verbose    bool

	overrides []func(*Sim)
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra simOptionKind = iota // size, seed, difficulty, verbose
	simOptState                      // body, heading, food, power-up overrides
)

// SimOption is a builder function applied to a Sim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*Sim)
}

// WithDifficulty sets the pacing tier.
func WithDifficulty(d Difficulty) SimOption {
	return SimOption{simOptInfra, func(s *Sim) { s.difficulty = d }}
}

// WithBoardSize sets the bordered board dimensions.
func WithBoardSize(w, h int) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.width = w
		s.height = h
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(s *Sim) {
		s.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- sim harness
	}}
}

// WithHighScore seeds the persisted best for the run.
func WithHighScore(hs int) SimOption {
	return SimOption{simOptInfra, func(s *Sim) { s.highScore = hs }}
}

// WithVerbose enables per-tick verbose logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(s *Sim) { s.verbose = v }}
}

// WithRandomSteering turns on a random-walk steering policy: roughly one tick
// in four picks a random direction before advancing.
func WithRandomSteering() SimOption {
	return SimOption{simOptInfra, func(s *Sim) { s.steer = true }}
}

// WithBody replaces the spawned snake body. Head first.
func WithBody(body ...Position) SimOption {
	return SimOption{simOptState, func(s *Sim) {
		s.Game.Snake.Body = append([]Position(nil), body...)
	}}
}

// WithHeading sets the snake heading directly, bypassing the reversal filter.
func WithHeading(d Direction) SimOption {
	return SimOption{simOptState, func(s *Sim) { s.Game.Snake.Direction = d }}
}

// WithFood pins the food to a cell.
func WithFood(p Position) SimOption {
	return SimOption{simOptState, func(s *Sim) { s.Game.Food = p }}
}

// WithPowerUp pins a power-up of the given type to a cell.
func WithPowerUp(t PowerUpType, p Position) SimOption {
	return SimOption{simOptState, func(s *Sim) {
		s.Game.PowerUp = &PowerUp{Position: p, Type: t, Active: true}
	}}
}

// NewSim constructs a Sim in two ordered passes: infrastructure options
// first, then the Game is built, then state overrides.
func NewSim(opts ...SimOption) *Sim {
	s := &Sim{
		difficulty: Medium,
		width:      40,
		height:     20,
		rng:        rand.New(rand.NewSource(1)), // #nosec G404 -- sim harness default
	}
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(s)
		}
	}
	s.SimLog = NewSimLog(s.verbose)
	s.Game = newGame(s.difficulty, s.width, s.height, s.highScore, nil, s.rng)
	for _, o := range opts {
		if o.kind == simOptState {
			o.fn(s)
		}
	}
	return s
}

// RunTicks advances the simulation n ticks, logging events to SimLog. Stops
// early on game over.
func (s *Sim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		if s.Game.GameOver {
			return
		}
		s.stepOnce()
	}
}

// RunUntil advances up to maxTicks, stopping early when predicate returns
// true. Returns the tick at which it was satisfied, or -1.
func (s *Sim) RunUntil(predicate func(*Sim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		if s.Game.GameOver {
			return -1
		}
		s.stepOnce()
		if predicate(s) {
			return s.Game.CurrentTick()
		}
	}
	return -1
}

// stepOnce mirrors one pass of the interactive loop: optional steering, one
// Tick, then change-detection logging.
func (s *Sim) stepOnce() {
	g := s.Game

	prevScore := g.Score
	prevLen := len(g.Snake.Body)
	prevPowerUp := g.PowerUp
	prevCollected := g.collected
	_, prevEffect := g.ActiveSpeedEffect()

	if s.steer && s.rng.Intn(4) == 0 {
		g.Snake.ChangeDirection(Direction(s.rng.Intn(4)))
	}

	g.Tick()
	tick := g.CurrentTick()

	if g.Score != prevScore {
		s.SimLog.Add(tick, LogScore, "change",
			fmt.Sprintf("%d -> %d", prevScore, g.Score), float64(g.Score))
	}
	if len(g.Snake.Body) > prevLen && g.Score == prevScore+10 {
		s.SimLog.Add(tick, LogFood, "eaten",
			fmt.Sprintf("at (%d,%d)", g.Snake.Head().X, g.Snake.Head().Y), 0)
	}
	for t := SpeedBoost; t < powerUpTypeCount; t++ {
		if g.collected[t] != prevCollected[t] {
			s.SimLog.Add(tick, LogPowerUp, "collected", t.String(), 0)
		}
	}
	if prevPowerUp == nil && g.PowerUp != nil {
		s.SimLog.Add(tick, LogPowerUp, "spawned", g.PowerUp.Type.String(), 0)
	}
	if _, now := g.ActiveSpeedEffect(); prevEffect && !now {
		s.SimLog.Add(tick, LogPowerUp, "effect_end", "", 0)
	}
	if g.GameOver {
		s.SimLog.Add(tick, LogState, "game_over",
			fmt.Sprintf("score %d len %d", g.Score, len(g.Snake.Body)), float64(g.Score))
	}

	dirty := g.DrainDirty()
	s.SimLog.AddVerbose(tick, LogRender, "dirty_cells", "", float64(len(dirty)))
}
