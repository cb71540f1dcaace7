package app

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snaketerm/internal/game"
	"snaketerm/internal/i18n"
	"snaketerm/internal/storage"
)

func TestHighScoresOptions_AlignedPerTier(t *testing.T) {
	scores := storage.HighScores{Easy: 10, Medium: 1200, Hard: 0, Extreme: 7}

	for _, lang := range i18n.All {
		rows := highScoresOptions(scores, lang)
		require.Len(t, rows, game.DifficultyCount)

		width := runewidth.StringWidth(rows[0])
		for i, row := range rows {
			assert.Equal(t, width, runewidth.StringWidth(row), "lang %s row %d", lang, i)
			assert.True(t, strings.HasPrefix(row, i18n.DifficultyLabel(lang, game.Difficulties[i])),
				"lang %s row %d starts with tier label", lang, i)
		}
		assert.Contains(t, rows[1], "1200")
	}
}

func TestOnOff_Localized(t *testing.T) {
	for _, lang := range i18n.All {
		assert.Equal(t, i18n.SettingOn(lang), onOff(true, lang))
		assert.Equal(t, i18n.SettingOff(lang), onOff(false, lang))
	}
}
