package main

import (
	"flag"
	"fmt"
	"os"

	"snaketerm/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	finalScore   int
	finalLength  int
	foodsEaten   int
	spawns       int
	collected    int
	effectEnds   int
	gameOverTick int
	ticksRun     int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var difficultyName string
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 2000, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&difficultyName, "difficulty", "medium", "difficulty tier (easy|medium|hard|extreme)")
	flag.BoolVar(&verbose, "verbose", false, "print the full sim log per run")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(1)
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		os.Exit(1)
	}
	var difficulty game.Difficulty
	if err := difficulty.UnmarshalText([]byte(difficultyName)); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}

	fmt.Printf("=== Headless Snake Report ===\n")
	fmt.Printf("difficulty=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n",
		difficulty, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runOnce(i+1, seed, ticks, difficulty, verbose)
		all = append(all, stats)
		printRun(stats)
	}
	printAggregate(all)
}

func runOnce(runIndex int, seed int64, ticks int, difficulty game.Difficulty, verbose bool) runStats {
	sim := game.NewSim(
		game.WithSeed(seed),
		game.WithDifficulty(difficulty),
		game.WithRandomSteering(),
		game.WithVerbose(verbose),
	)
	sim.RunTicks(ticks)

	gameOverTick := -1
	if entry, ok := sim.SimLog.LastOf(game.LogState, "game_over"); ok {
		gameOverTick = entry.Tick
	}
	stats := runStats{
		runIndex:     runIndex,
		seed:         seed,
		finalScore:   sim.Game.Score,
		finalLength:  len(sim.Game.Snake.Body),
		foodsEaten:   len(sim.SimLog.Filter(game.LogFood, "eaten")),
		spawns:       len(sim.SimLog.Filter(game.LogPowerUp, "spawned")),
		collected:    len(sim.SimLog.Filter(game.LogPowerUp, "collected")),
		effectEnds:   len(sim.SimLog.Filter(game.LogPowerUp, "effect_end")),
		gameOverTick: gameOverTick,
		ticksRun:     sim.Game.CurrentTick(),
	}
	if verbose {
		fmt.Print(sim.SimLog.Format())
	}
	return stats
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("final: score=%d length=%d ticks=%d game_over_tick=%d\n",
		rs.finalScore, rs.finalLength, rs.ticksRun, rs.gameOverTick)
	fmt.Printf("events: foods=%d power_up_spawns=%d power_up_collected=%d effect_ends=%d\n\n",
		rs.foodsEaten, rs.spawns, rs.collected, rs.effectEnds)
}

func printAggregate(all []runStats) {
	totalScore := 0
	totalFoods := 0
	totalCollected := 0
	survived := 0
	overTicks := make([]int, 0, len(all))
	for _, rs := range all {
		totalScore += rs.finalScore
		totalFoods += rs.foodsEaten
		totalCollected += rs.collected
		if rs.gameOverTick < 0 {
			survived++
		} else {
			overTicks = append(overTicks, rs.gameOverTick)
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d survived_full_run=%d\n", len(all), survived)
	fmt.Printf("avg_per_run: score=%.1f foods=%.1f power_ups=%.1f\n",
		avg(totalScore, len(all)), avg(totalFoods, len(all)), avg(totalCollected, len(all)))
	fmt.Printf("avg_game_over_tick=%s\n", avgTickString(overTicks))
}

func avg(sum, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}
