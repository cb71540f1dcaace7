package game

import (
	"math/rand"
	"time"
)

// Beeper is the audible-feedback sink. The terminal screen satisfies it; a
// nil Beeper silences the game.
type Beeper interface {
	Beep()
}

// Game is one round of play. Exported fields form the read surface consumed
// by the renderer; all mutation goes through methods on the main goroutine.
type Game struct {
	Snake      *Snake
	Food       Position
	Score      int
	HighScore  int
	GameOver   bool
	Difficulty Difficulty
	PowerUp    *PowerUp
	Width      int
	Height     int
	Muted      bool

	paused    bool
	effect    *speedEffect
	dirty     *dirtySet
	rng       *rand.Rand
	beeper    Beeper
	tick      int
	collected [powerUpTypeCount]int
}

// New starts a round on a bordered width x height board. highScore is the
// persisted best for this difficulty tier.
func New(difficulty Difficulty, width, height, highScore int, beeper Beeper) *Game {
	// #nosec G404 -- game only
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return newGame(difficulty, width, height, highScore, beeper, rng)
}

func newGame(difficulty Difficulty, width, height, highScore int, beeper Beeper, rng *rand.Rand) *Game {
	g := &Game{
		Snake:      NewSnake(width, height),
		Difficulty: difficulty,
		HighScore:  highScore,
		Width:      width,
		Height:     height,
		dirty:      newDirtySet(),
		rng:        rng,
		beeper:     beeper,
	}
	g.generateFood()
	if g.rng.Float64() < difficulty.params().refreshChance {
		g.spawnPowerUp()
	}
	for _, seg := range g.Snake.Body {
		g.MarkDirty(seg)
	}
	return g
}

// TogglePause flips the pause flag. Ignored once the round is over.
func (g *Game) TogglePause() {
	if g.GameOver {
		return
	}
	g.paused = !g.paused
}

// Paused reports whether the round is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// ToggleMute flips audible feedback on or off.
func (g *Game) ToggleMute() {
	g.Muted = !g.Muted
}

// CurrentTick returns the number of completed ticks.
func (g *Game) CurrentTick() int {
	return g.tick
}

// ActiveSpeedEffect returns the running boost or slow effect, if any.
func (g *Game) ActiveSpeedEffect() (PowerUpType, bool) {
	if g.effect == nil {
		return 0, false
	}
	return g.effect.kind, true
}

// SpeedEffectTicksLeft returns the remaining duration of the active effect,
// or zero when none is running.
func (g *Game) SpeedEffectTicksLeft() int {
	if g.effect == nil {
		return 0
	}
	return g.effect.ticksLeft
}

// SpeedMultiplierPercent is the power-up component of the pace: 70 under a
// boost, 150 under a slow, otherwise 100.
func (g *Game) SpeedMultiplierPercent() int {
	if g.effect == nil {
		return 100
	}
	switch g.effect.kind {
	case SpeedBoost:
		return 70
	case SlowDown:
		return 150
	default:
		return 100
	}
}

// DifficultySpeedMultiplierPercent is the score-progression component of the
// pace. Every 50 points takes one step of stepPercent off, capped at maxSteps.
func (g *Game) DifficultySpeedMultiplierPercent() int {
	p := g.Difficulty.params()
	steps := g.Score / 50
	if steps > p.maxSteps {
		steps = p.maxSteps
	}
	return 100 - steps*p.stepPercent
}

// PowerUpsCollected returns how many power-ups of type t were collected this
// round.
func (g *Game) PowerUpsCollected(t PowerUpType) int {
	if t < SpeedBoost || t >= powerUpTypeCount {
		return 0
	}
	return g.collected[t]
}

// MarkDirty records a cell whose contents changed since the last render.
func (g *Game) MarkDirty(p Position) {
	g.dirty.add(p)
}

// DrainDirty hands the accumulated dirty cells to the renderer and resets the
// set. Returns nil when nothing changed.
func (g *Game) DrainDirty() []Position {
	return g.dirty.drain()
}

func (g *Game) playSound() {
	if g.Muted || g.beeper == nil {
		return
	}
	g.beeper.Beep()
}

// Tick advances the round by one step: move, resolve collisions, apply
// collections, age the active effect, maybe spawn a power-up. A no-op once
// the round is over. The caller gates on pause.
func (g *Game) Tick() {
	if g.GameOver {
		return
	}
	g.tick++

	prev := make([]Position, len(g.Snake.Body))
	copy(prev, g.Snake.Body)

	next := g.Snake.NextHead(g.Width, g.Height)
	grow := next == g.Food
	g.Snake.MoveForward(grow, g.Width, g.Height)

	// Self-collision is checked after the move: the head may step into the
	// cell the tail just vacated.
	head := g.Snake.Head()
	for _, seg := range g.Snake.Body[1:] {
		if seg == head {
			g.GameOver = true
			g.markBodyDirty(prev)
			g.playSound()
			return
		}
	}

	if grow {
		g.Score += 10
		if g.Score > g.HighScore {
			g.HighScore = g.Score
		}
		g.generateFood()
		g.playSound()
	}

	g.checkPowerUpCollision()
	g.advanceSpeedEffect()

	if g.PowerUp == nil && g.rng.Float64() < g.Difficulty.params().tickChance {
		g.spawnPowerUp()
	}

	g.markBodyDirty(prev)
	g.markBodyDirty(g.Snake.Body)
}

func (g *Game) markBodyDirty(body []Position) {
	for _, seg := range body {
		g.MarkDirty(seg)
	}
}

func (g *Game) checkPowerUpCollision() {
	if g.PowerUp == nil || g.Snake.Head() != g.PowerUp.Position {
		return
	}
	collected := *g.PowerUp
	g.MarkDirty(collected.Position)
	g.PowerUp = nil
	g.applyPowerUpEffect(collected.Type)
	if g.rng.Float64() < g.Difficulty.params().refreshChance {
		g.spawnPowerUp()
	}
}

func (g *Game) applyPowerUpEffect(t PowerUpType) {
	switch t {
	case SpeedBoost, SlowDown:
		g.effect = &speedEffect{kind: t, ticksLeft: g.Difficulty.params().effectTicks}
	case ExtraPoints:
		g.Score += 50
		if g.Score > g.HighScore {
			g.HighScore = g.Score
		}
	case Grow:
		tail := g.Snake.Body[len(g.Snake.Body)-1]
		g.Snake.Body = append(g.Snake.Body, tail, tail)
	case Shrink:
		for i := 0; i < 2 && len(g.Snake.Body) > minSnakeLen; i++ {
			tail := g.Snake.Body[len(g.Snake.Body)-1]
			g.Snake.Body = g.Snake.Body[:len(g.Snake.Body)-1]
			g.MarkDirty(tail)
		}
	}
	g.collected[t]++
	g.playSound()
}

// advanceSpeedEffect ages the active effect. The effect expires on the tick
// its counter reaches zero, so a fresh effect runs for its full budget.
func (g *Game) advanceSpeedEffect() {
	if g.effect == nil {
		return
	}
	g.effect.ticksLeft--
	if g.effect.ticksLeft <= 0 {
		g.effect = nil
	}
}

// freeCell picks a uniformly random interior cell not rejected by blocked.
// Rejection sampling is bounded; if the budget runs out a row-major scan
// finds any remaining free cell. ok is false only when the board is full.
func (g *Game) freeCell(blocked func(Position) bool) (Position, bool) {
	iw, ih := g.Width-2, g.Height-2
	attempts := 2 * iw * ih
	if attempts < 16 {
		attempts = 16
	}
	for i := 0; i < attempts; i++ {
		p := Position{X: 1 + g.rng.Intn(iw), Y: 1 + g.rng.Intn(ih)}
		if !blocked(p) {
			return p, true
		}
	}
	for y := 1; y <= ih; y++ {
		for x := 1; x <= iw; x++ {
			p := Position{X: x, Y: y}
			if !blocked(p) {
				return p, true
			}
		}
	}
	return Position{}, false
}

func (g *Game) generateFood() {
	pos, ok := g.freeCell(func(p Position) bool {
		if g.Snake.OverlapsWith(p) {
			return true
		}
		return g.PowerUp != nil && g.PowerUp.Position == p
	})
	if !ok {
		return
	}
	g.MarkDirty(g.Food)
	g.Food = pos
	g.MarkDirty(g.Food)
}

func (g *Game) spawnPowerUp() {
	pos, ok := g.freeCell(func(p Position) bool {
		return g.Snake.OverlapsWith(p) || p == g.Food
	})
	if !ok {
		return
	}
	g.PowerUp = &PowerUp{
		Position: pos,
		Type:     PowerUpType(g.rng.Intn(powerUpTypeCount)),
		Active:   true,
	}
	g.MarkDirty(pos)
}
