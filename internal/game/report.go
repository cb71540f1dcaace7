package game

import (
	"fmt"
	"strings"
)

// FormatSessionReport renders a plain-text diagnostics snapshot of the round,
// suitable for the clipboard or a log file.
func FormatSessionReport(g *Game, sessionID string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- snaketerm session report ---\n")
	fmt.Fprintf(&b, "session=%s difficulty=%s tick=%d\n", sessionID, g.Difficulty, g.CurrentTick())
	fmt.Fprintf(&b, "score=%d best=%d length=%d game_over=%v paused=%v\n",
		g.Score, g.HighScore, len(g.Snake.Body), g.GameOver, g.Paused())
	fmt.Fprintf(&b, "pace: progression=%d%% power_up=%d%%\n",
		g.DifficultySpeedMultiplierPercent(), g.SpeedMultiplierPercent())
	if kind, ok := g.ActiveSpeedEffect(); ok {
		fmt.Fprintf(&b, "active_effect=%s ticks_left=%d\n", kind, g.SpeedEffectTicksLeft())
	} else {
		b.WriteString("active_effect=none\n")
	}
	b.WriteString("power_ups_collected:\n")
	for t := SpeedBoost; t < powerUpTypeCount; t++ {
		fmt.Fprintf(&b, "  %-12s %d\n", t.String(), g.PowerUpsCollected(t))
	}
	return b.String()
}
