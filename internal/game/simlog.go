package game

import (
	"fmt"
	"strings"
)

// Sim log categories.
const (
	LogScore   = "score"
	LogFood    = "food"
	LogPowerUp = "power_up"
	LogState   = "state"
	LogRender  = "render"
)

// SimLogEntry is one recorded event from a headless run.
type SimLogEntry struct {
	Tick     int
	Category string
	Key      string
	Value    string
	NumVal   float64
}

// SimLog collects structured events during headless simulation. Invariant
// tests and the headless-sim binary read it back; nothing in interactive play
// touches it.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records an event.
func (l *SimLog) Add(tick int, category, key, value string, num float64) {
	l.entries = append(l.entries, SimLogEntry{tick, category, key, value, num})
}

// AddVerbose records an event only when the log was built verbose. High-rate
// events (per-tick render counts) go through here.
func (l *SimLog) AddVerbose(tick int, category, key, value string, num float64) {
	if !l.verbose {
		return
	}
	l.Add(tick, category, key, value, num)
}

// Entries returns the full event list in recording order.
func (l *SimLog) Entries() []SimLogEntry {
	return l.entries
}

// Filter returns all entries in category with the given key. An empty key
// matches every key.
func (l *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range l.entries {
		if e.Category == category && (key == "" || e.Key == key) {
			out = append(out, e)
		}
	}
	return out
}

// CountCategory returns the number of entries in category.
func (l *SimLog) CountCategory(category string) int {
	n := 0
	for _, e := range l.entries {
		if e.Category == category {
			n++
		}
	}
	return n
}

// LastOf returns the most recent entry for category/key.
func (l *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		e := l.entries[i]
		if e.Category == category && e.Key == key {
			return e, true
		}
	}
	return SimLogEntry{}, false
}

// HasEntry reports whether any entry matches category/key.
func (l *SimLog) HasEntry(category, key string) bool {
	_, ok := l.LastOf(category, key)
	return ok
}

// Format renders the log as one line per entry for debug output.
func (l *SimLog) Format() string {
	var b strings.Builder
	for _, e := range l.entries {
		fmt.Fprintf(&b, "[%05d] %-9s %-20s %-12s %.2f\n",
			e.Tick, e.Category, e.Key, e.Value, e.NumVal)
	}
	return b.String()
}
