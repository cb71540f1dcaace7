package game

import (
	"testing"
	"time"
)

func TestDifficulty_BaseTickRates(t *testing.T) {
	cases := []struct {
		d    Difficulty
		h, v time.Duration
	}{
		{Easy, 150 * time.Millisecond, 300 * time.Millisecond},
		{Medium, 100 * time.Millisecond, 200 * time.Millisecond},
		{Hard, 60 * time.Millisecond, 120 * time.Millisecond},
		{Extreme, 40 * time.Millisecond, 80 * time.Millisecond},
	}
	for _, tc := range cases {
		h, v := tc.d.BaseTickRates()
		if h != tc.h || v != tc.v {
			t.Errorf("%v rates = %v/%v, want %v/%v", tc.d, h, v, tc.h, tc.v)
		}
		if v != 2*h {
			t.Errorf("%v vertical rate is not double horizontal", tc.d)
		}
	}
}

func TestDifficulty_ProgressionCurve(t *testing.T) {
	sim := NewSim(WithDifficulty(Medium))
	g := sim.Game

	g.Score = 0
	if got := g.DifficultySpeedMultiplierPercent(); got != 100 {
		t.Errorf("score 0: %d%%, want 100%%", got)
	}
	g.Score = 50
	if got := g.DifficultySpeedMultiplierPercent(); got != 97 {
		t.Errorf("score 50: %d%%, want 97%%", got)
	}
	g.Score = 1000
	if got := g.DifficultySpeedMultiplierPercent(); got != 55 {
		t.Errorf("score 1000: %d%%, want 55%%", got)
	}
}

func TestDifficulty_ProgressionNonIncreasingWithFloor(t *testing.T) {
	floors := map[Difficulty]int{Easy: 70, Medium: 55, Hard: 52, Extreme: 50}
	for _, d := range Difficulties {
		sim := NewSim(WithDifficulty(d))
		g := sim.Game
		prev := 101
		for score := 0; score <= 2000; score += 10 {
			g.Score = score
			pct := g.DifficultySpeedMultiplierPercent()
			if pct > prev {
				t.Fatalf("%v: percent rose from %d to %d at score %d", d, prev, pct, score)
			}
			prev = pct
		}
		g.Score = 100000
		if got := g.DifficultySpeedMultiplierPercent(); got != floors[d] {
			t.Errorf("%v floor = %d%%, want %d%%", d, got, floors[d])
		}
	}
}

func TestDifficulty_TiersStrictlyFaster(t *testing.T) {
	for i := 1; i < DifficultyCount; i++ {
		prevH, prevV := Difficulties[i-1].BaseTickRates()
		h, v := Difficulties[i].BaseTickRates()
		if h >= prevH || v >= prevV {
			t.Errorf("%v is not faster than %v", Difficulties[i], Difficulties[i-1])
		}
	}
}

func TestDifficulty_TiersDominateSpawnAndEffectKnobs(t *testing.T) {
	for i := 1; i < DifficultyCount; i++ {
		prev := Difficulties[i-1].params()
		cur := Difficulties[i].params()
		if cur.refreshChance >= prev.refreshChance {
			t.Errorf("%v refresh chance %.3f not below %v's %.3f",
				Difficulties[i], cur.refreshChance, Difficulties[i-1], prev.refreshChance)
		}
		if cur.tickChance >= prev.tickChance {
			t.Errorf("%v tick chance %.3f not below %v's %.3f",
				Difficulties[i], cur.tickChance, Difficulties[i-1], prev.tickChance)
		}
		if cur.effectTicks >= prev.effectTicks {
			t.Errorf("%v effect duration %d not below %v's %d",
				Difficulties[i], cur.effectTicks, Difficulties[i-1], prev.effectTicks)
		}
	}
}

func TestDifficulty_TextRoundTrip(t *testing.T) {
	for _, d := range Difficulties {
		text, err := d.MarshalText()
		if err != nil {
			t.Fatalf("%v marshal: %v", d, err)
		}
		var back Difficulty
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("%v unmarshal: %v", d, err)
		}
		if back != d {
			t.Errorf("round trip %v -> %s -> %v", d, text, back)
		}
	}
	var d Difficulty
	if err := d.UnmarshalText([]byte("nightmare")); err == nil {
		t.Error("expected error for unknown tier name")
	}
}

func TestDifficulty_OutOfRangeFallsBackToMedium(t *testing.T) {
	bad := Difficulty(99)
	h, v := bad.BaseTickRates()
	mh, mv := Medium.BaseTickRates()
	if h != mh || v != mv {
		t.Errorf("out-of-range rates = %v/%v, want medium %v/%v", h, v, mh, mv)
	}
	if bad.String() != "medium" {
		t.Errorf("String = %q, want medium", bad.String())
	}
}
