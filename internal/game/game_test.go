package game

import "testing"

// farCell is outside every scripted path below; pinning food or a power-up
// there keeps scripted ticks deterministic.
var farCell = Position{35, 17}

func TestTick_EatingFoodGrowsAndScores(t *testing.T) {
	sim := NewSim(
		WithBody(Position{6, 5}, Position{7, 5}, Position{8, 5}),
		WithHeading(Left),
		WithFood(Position{5, 5}),
		WithPowerUp(ExtraPoints, farCell),
	)
	g := sim.Game
	g.Tick()

	if g.Score != 10 {
		t.Errorf("Score = %d, want 10", g.Score)
	}
	if len(g.Snake.Body) != 4 {
		t.Errorf("length = %d, want 4", len(g.Snake.Body))
	}
	if g.Snake.Head() != (Position{5, 5}) {
		t.Errorf("head = %v, want (5,5)", g.Snake.Head())
	}
	if g.GameOver {
		t.Error("round ended unexpectedly")
	}
	if g.Food == (Position{5, 5}) {
		t.Error("food was not regenerated")
	}
}

func TestTick_HighScoreTracksScore(t *testing.T) {
	sim := NewSim(
		WithHighScore(5),
		WithBody(Position{6, 5}, Position{7, 5}, Position{8, 5}),
		WithHeading(Left),
		WithFood(Position{5, 5}),
		WithPowerUp(ExtraPoints, farCell),
	)
	g := sim.Game
	g.Tick()
	if g.HighScore != 10 {
		t.Errorf("HighScore = %d, want 10", g.HighScore)
	}
}

func TestTick_SelfCollisionAfterMoveEndsRound(t *testing.T) {
	// A closed 2x3 ring: the head's next cell is the neck.
	sim := NewSim(
		WithBody(
			Position{5, 5}, Position{6, 5}, Position{7, 5},
			Position{7, 6}, Position{6, 6}, Position{5, 6},
		),
		WithHeading(Right),
		WithFood(farCell),
		WithPowerUp(ExtraPoints, Position{34, 17}),
	)
	g := sim.Game
	g.Tick()
	if !g.GameOver {
		t.Fatal("expected game over on ring collision")
	}
}

func TestTick_TailVacatedCellIsNotCollision(t *testing.T) {
	// Head steps into the cell the tail leaves on the same tick.
	sim := NewSim(
		WithBody(Position{5, 5}, Position{6, 5}, Position{6, 6}, Position{5, 6}),
		WithHeading(Down),
		WithFood(farCell),
		WithPowerUp(ExtraPoints, Position{34, 17}),
	)
	g := sim.Game
	g.Tick()
	if g.GameOver {
		t.Fatal("tail-vacated cell must not end the round")
	}
	if g.Snake.Head() != (Position{5, 6}) {
		t.Errorf("head = %v, want (5,6)", g.Snake.Head())
	}
}

func TestTick_NoOpAfterGameOver(t *testing.T) {
	sim := NewSim(WithFood(farCell))
	g := sim.Game
	g.GameOver = true
	before := g.CurrentTick()
	g.Tick()
	if g.CurrentTick() != before {
		t.Error("tick advanced after game over")
	}
}

func TestTogglePause_BlockedAfterGameOver(t *testing.T) {
	sim := NewSim()
	g := sim.Game
	g.GameOver = true
	g.TogglePause()
	if g.Paused() {
		t.Error("pause must be ignored after game over")
	}
}

func TestPowerUp_SpeedBoostStartsEffect(t *testing.T) {
	sim := NewSim(
		WithBody(Position{10, 10}, Position{11, 10}, Position{12, 10}),
		WithHeading(Left),
		WithFood(farCell),
		WithPowerUp(SpeedBoost, Position{9, 10}),
	)
	g := sim.Game
	g.Tick()

	kind, ok := g.ActiveSpeedEffect()
	if !ok || kind != SpeedBoost {
		t.Fatalf("active effect = %v,%v, want SpeedBoost", kind, ok)
	}
	if g.SpeedMultiplierPercent() != 70 {
		t.Errorf("multiplier = %d%%, want 70%%", g.SpeedMultiplierPercent())
	}
	// The effect ages on the tick it is applied.
	want := Medium.EffectTicks() - 1
	if g.SpeedEffectTicksLeft() != want {
		t.Errorf("ticks left = %d, want %d", g.SpeedEffectTicksLeft(), want)
	}
	if g.PowerUpsCollected(SpeedBoost) != 1 {
		t.Errorf("collected = %d, want 1", g.PowerUpsCollected(SpeedBoost))
	}
}

func TestPowerUp_SlowDownIs150Percent(t *testing.T) {
	sim := NewSim(
		WithBody(Position{10, 10}, Position{11, 10}, Position{12, 10}),
		WithHeading(Left),
		WithFood(farCell),
		WithPowerUp(SlowDown, Position{9, 10}),
	)
	g := sim.Game
	g.Tick()
	if g.SpeedMultiplierPercent() != 150 {
		t.Errorf("multiplier = %d%%, want 150%%", g.SpeedMultiplierPercent())
	}
}

func TestPowerUp_NewEffectReplacesOld(t *testing.T) {
	sim := NewSim(
		WithBody(Position{10, 10}, Position{11, 10}, Position{12, 10}),
		WithHeading(Left),
		WithFood(farCell),
		WithPowerUp(SlowDown, Position{9, 10}),
	)
	g := sim.Game
	g.effect = &speedEffect{kind: SpeedBoost, ticksLeft: 50}
	g.Tick()
	kind, ok := g.ActiveSpeedEffect()
	if !ok || kind != SlowDown {
		t.Fatalf("active effect = %v,%v, want SlowDown", kind, ok)
	}
}

func TestPowerUp_EffectExpires(t *testing.T) {
	sim := NewSim(WithFood(farCell), WithPowerUp(ExtraPoints, Position{34, 17}))
	g := sim.Game
	g.effect = &speedEffect{kind: SpeedBoost, ticksLeft: 1}
	g.Tick()
	if _, ok := g.ActiveSpeedEffect(); ok {
		t.Error("effect should have expired")
	}
	if g.SpeedMultiplierPercent() != 100 {
		t.Errorf("multiplier = %d%%, want 100%%", g.SpeedMultiplierPercent())
	}
}

func TestPowerUp_ExtraPointsScores50(t *testing.T) {
	sim := NewSim(
		WithBody(Position{10, 10}, Position{11, 10}, Position{12, 10}),
		WithHeading(Left),
		WithFood(farCell),
		WithPowerUp(ExtraPoints, Position{9, 10}),
	)
	g := sim.Game
	g.Tick()
	if g.Score != 50 {
		t.Errorf("Score = %d, want 50", g.Score)
	}
	if g.HighScore != 50 {
		t.Errorf("HighScore = %d, want 50", g.HighScore)
	}
	if len(g.Snake.Body) != 3 {
		t.Errorf("length = %d, want 3", len(g.Snake.Body))
	}
}

func TestPowerUp_GrowAddsTwoSegments(t *testing.T) {
	sim := NewSim(
		WithBody(Position{10, 10}, Position{11, 10}, Position{12, 10}),
		WithHeading(Left),
		WithFood(farCell),
		WithPowerUp(Grow, Position{9, 10}),
	)
	g := sim.Game
	g.Tick()
	if len(g.Snake.Body) != 5 {
		t.Errorf("length = %d, want 5", len(g.Snake.Body))
	}
}

func TestPowerUp_ShrinkRemovesTwoSegments(t *testing.T) {
	sim := NewSim(
		WithBody(
			Position{10, 10}, Position{11, 10}, Position{12, 10},
			Position{13, 10}, Position{14, 10}, Position{15, 10},
		),
		WithHeading(Left),
		WithFood(farCell),
		WithPowerUp(Shrink, Position{9, 10}),
	)
	g := sim.Game
	g.Tick()
	if len(g.Snake.Body) != 4 {
		t.Errorf("length = %d, want 4", len(g.Snake.Body))
	}
}

func TestPowerUp_ShrinkNeverCutsBelowMinimum(t *testing.T) {
	sim := NewSim(
		WithBody(Position{10, 10}, Position{11, 10}, Position{12, 10}),
		WithHeading(Left),
		WithFood(farCell),
		WithPowerUp(Shrink, Position{9, 10}),
	)
	g := sim.Game
	g.Tick()
	if len(g.Snake.Body) != minSnakeLen {
		t.Errorf("length = %d, want %d", len(g.Snake.Body), minSnakeLen)
	}
}

func TestFreeCell_SaturatedBoardIsSilentNoOp(t *testing.T) {
	sim := NewSim(WithBoardSize(5, 5))
	g := sim.Game
	// Cover the whole 3x3 interior with the body.
	var body []Position
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			body = append(body, Position{x, y})
		}
	}
	g.Snake.Body = body
	g.PowerUp = nil
	before := g.Food
	g.generateFood()
	if g.Food != before {
		t.Error("food moved on a saturated board")
	}
	g.spawnPowerUp()
	if g.PowerUp != nil {
		t.Error("power-up spawned on a saturated board")
	}
}

func TestDrainDirty_DeduplicatesAndResets(t *testing.T) {
	sim := NewSim()
	g := sim.Game
	g.DrainDirty()

	g.MarkDirty(Position{3, 3})
	g.MarkDirty(Position{3, 3})
	g.MarkDirty(Position{4, 4})
	cells := g.DrainDirty()
	if len(cells) != 2 {
		t.Fatalf("drained %d cells, want 2", len(cells))
	}
	if cells[0] != (Position{3, 3}) || cells[1] != (Position{4, 4}) {
		t.Errorf("drain order = %v, want insertion order", cells)
	}
	if got := g.DrainDirty(); got != nil {
		t.Errorf("second drain = %v, want nil", got)
	}
}

type countingBeeper struct{ n int }

func (b *countingBeeper) Beep() { b.n++ }

func TestMute_SuppressesBeeps(t *testing.T) {
	b := &countingBeeper{}
	sim := NewSim(
		WithBody(Position{6, 5}, Position{7, 5}, Position{8, 5}),
		WithHeading(Left),
		WithFood(Position{5, 5}),
		WithPowerUp(ExtraPoints, farCell),
	)
	g := sim.Game
	g.beeper = b
	g.ToggleMute()
	g.Tick()
	if b.n != 0 {
		t.Errorf("beeped %d times while muted", b.n)
	}
	g.ToggleMute()
	g.Food = Position{4, 5}
	g.Tick()
	if b.n == 0 {
		t.Error("expected a beep after unmuting and eating")
	}
}
