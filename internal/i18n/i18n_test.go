package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snaketerm/internal/game"
)

func TestAllKeysPresentForEveryLanguage(t *testing.T) {
	accessors := map[string]func(Language) string{
		"ControlsText":                 ControlsText,
		"MenuTitle":                    MenuTitle,
		"MenuNavigationHint":           MenuNavigationHint,
		"MenuConfirmHint":              MenuConfirmHint,
		"LanguageName":                 LanguageName,
		"LanguagePopupTitle":           LanguagePopupTitle,
		"LanguageLabel":                LanguageLabel,
		"SmallWindowTitle":             SmallWindowTitle,
		"SmallWindowCurrentLabel":      SmallWindowCurrentLabel,
		"SmallWindowMinimumLabel":      SmallWindowMinimumLabel,
		"SmallWindowHint":              SmallWindowHint,
		"StatusScoreLabel":             StatusScoreLabel,
		"StatusDifficultyLabel":        StatusDifficultyLabel,
		"StatusPaused":                 StatusPaused,
		"StatusMuted":                  StatusMuted,
		"InfoBestLabel":                InfoBestLabel,
		"InfoPaceLabel":                InfoPaceLabel,
		"InfoEffectLabel":              InfoEffectLabel,
		"GameOverTitle":                GameOverTitle,
		"GameOverMenuHint":             GameOverMenuHint,
		"GameOverQuitHint":             GameOverQuitHint,
		"MenuPlay":                     MenuPlay,
		"MenuDifficulty":               MenuDifficulty,
		"MenuHighScores":               MenuHighScores,
		"MenuSettings":                 MenuSettings,
		"MenuQuit":                     MenuQuit,
		"MenuBack":                     MenuBack,
		"DifficultyMenuTitle":          DifficultyMenuTitle,
		"HighScoresMenuTitle":          HighScoresMenuTitle,
		"SettingsPauseOnFocusLossLabel": SettingsPauseOnFocusLossLabel,
		"SettingsSoundLabel":            SettingsSoundLabel,
		"SettingsResetHighScoresLabel":  SettingsResetHighScoresLabel,
		"SettingOn":                     SettingOn,
		"SettingOff":                    SettingOff,
		"ConfirmYes":                    ConfirmYes,
		"ConfirmNo":                     ConfirmNo,
		"ResetHighScoresTitle":          ResetHighScoresTitle,
	}
	for _, lang := range All {
		for name, fn := range accessors {
			assert.NotEmpty(t, fn(lang), "%s missing for %s", name, lang)
		}
		for _, d := range game.Difficulties {
			assert.NotEmpty(t, DifficultyLabel(lang, d), "DifficultyLabel(%s,%v)", lang, d)
		}
		assert.NotEmpty(t, SpeedEffectShort(lang, game.SpeedBoost))
		assert.NotEmpty(t, SpeedEffectShort(lang, game.SlowDown))
	}
}

func TestSpeedEffectShort_EmptyForInstantEffects(t *testing.T) {
	for _, lang := range All {
		assert.Empty(t, SpeedEffectShort(lang, game.ExtraPoints))
		assert.Empty(t, SpeedEffectShort(lang, game.Grow))
		assert.Empty(t, SpeedEffectShort(lang, game.Shrink))
	}
}

func TestLanguage_TextRoundTrip(t *testing.T) {
	for _, lang := range All {
		text, err := lang.MarshalText()
		require.NoError(t, err)
		var back Language
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, lang, back)
	}
	var l Language
	assert.Error(t, l.UnmarshalText([]byte("fr")))
}

func TestLanguage_IndexClamps(t *testing.T) {
	assert.Equal(t, En, FromIndex(-1))
	assert.Equal(t, En, FromIndex(99))
	assert.Equal(t, Ja, FromIndex(Ja.Index()))
	assert.Equal(t, "en", Language(99).String())
}
