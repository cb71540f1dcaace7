// Package i18n holds every user-facing string in five languages. Lookups are
// array-indexed by Language so a missing translation is a compile error, not
// a runtime fallback.
package i18n

import (
	"fmt"

	"snaketerm/internal/game"
)

// Language selects a translation column.
type Language int

const (
	En Language = iota
	Es
	Ja
	Pt
	Zh

	languageCount = 5
)

// All lists every supported language in menu order.
var All = [languageCount]Language{En, Es, Ja, Pt, Zh}

var languageCodes = [languageCount]string{"en", "es", "ja", "pt", "zh"}

// norm clamps out-of-range values to English so table lookups stay safe.
func (l Language) norm() Language {
	if l < En || l >= languageCount {
		return En
	}
	return l
}

// Index returns the menu-order index of l.
func (l Language) Index() int {
	return int(l.norm())
}

// FromIndex returns the language at menu-order index i, defaulting to English.
func FromIndex(i int) Language {
	return Language(i).norm()
}

func (l Language) String() string {
	return languageCodes[l.norm()]
}

// MarshalText serializes the two-letter code for config files.
func (l Language) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText accepts the two-letter codes. Unknown codes are an error so
// the caller keeps its default.
func (l *Language) UnmarshalText(text []byte) error {
	for i, code := range languageCodes {
		if string(text) == code {
			*l = Language(i)
			return nil
		}
	}
	return fmt.Errorf("unknown language %q", text)
}

var controlsText = [languageCount]string{
	"WASD/Arrows:Move P:Pause M:Mute C:Copy SPACE:Menu Q:Quit",
	"WASD/Flechas:Mover P:Pausa M:Mutear C:Copiar ESPACIO:Menú Q:Salir",
	"WASD/矢印:移動 P:一時停止 M:ミュート C:コピー SPACE:メニュー Q:終了",
	"WASD/Setas:Mover P:Pausa M:Silenciar C:Copiar ESPAÇO:Menu Q:Sair",
	"WASD/方向键:移动 P:暂停 M:静音 C:复制 SPACE:菜单 Q:退出",
}

// ControlsText is the in-game key legend. Its display width drives the
// minimum terminal width.
func ControlsText(l Language) string { return controlsText[l.norm()] }

var menuTitle = [languageCount]string{
	"SNAKE GAME", "SNAKE GAME", "スネークゲーム", "SNAKE GAME", "贪吃蛇",
}

func MenuTitle(l Language) string { return menuTitle[l.norm()] }

var menuNavigationHint = [languageCount]string{
	"Use ↑↓ arrows or WASD to navigate",
	"Usa ↑↓ o WASD para navegar",
	"↑↓ または WASD で移動",
	"Use ↑↓ ou WASD para navegar",
	"使用 ↑↓ 或 WASD 进行选择",
}

func MenuNavigationHint(l Language) string { return menuNavigationHint[l.norm()] }

var menuConfirmHint = [languageCount]string{
	"Press ENTER/SPACE to select, Q to quit",
	"Pulsa ENTER/ESPACIO para elegir, Q para salir",
	"ENTER/SPACE で決定、Q で終了",
	"Pressione ENTER/ESPAÇO para escolher, Q para sair",
	"按 ENTER/SPACE 确认，Q 退出",
}

func MenuConfirmHint(l Language) string { return menuConfirmHint[l.norm()] }

var languageName = [languageCount]string{
	"English", "Español", "日本語", "Português", "简体中文",
}

// LanguageName returns the native name of l, independent of the UI language.
func LanguageName(l Language) string { return languageName[l.norm()] }

var languagePopupTitle = [languageCount]string{
	"Select Language", "Selecciona idioma", "言語を選択", "Selecionar idioma", "选择语言",
}

func LanguagePopupTitle(l Language) string { return languagePopupTitle[l.norm()] }

var languageLabel = [languageCount]string{
	"Language", "Idioma", "言語", "Idioma", "语言",
}

func LanguageLabel(l Language) string { return languageLabel[l.norm()] }

var smallWindowTitle = [languageCount]string{
	"WINDOW TOO SMALL", "VENTANA MUY PEQUEÑA", "ウィンドウが小さすぎます",
	"JANELA MUITO PEQUENA", "窗口太小",
}

func SmallWindowTitle(l Language) string { return smallWindowTitle[l.norm()] }

var smallWindowCurrentLabel = [languageCount]string{
	"Current", "Actual", "現在", "Atual", "当前",
}

func SmallWindowCurrentLabel(l Language) string { return smallWindowCurrentLabel[l.norm()] }

var smallWindowMinimumLabel = [languageCount]string{
	"Minimum", "Mínimo", "最小", "Mínimo", "最小",
}

func SmallWindowMinimumLabel(l Language) string { return smallWindowMinimumLabel[l.norm()] }

var smallWindowHint = [languageCount]string{
	"Resize terminal to continue. Press Q to quit.",
	"Ajusta la terminal para continuar. Pulsa Q para salir.",
	"端末サイズを広げて続行。Qで終了。",
	"Ajuste o terminal para continuar. Pressione Q para sair.",
	"请调整终端大小后继续。按 Q 退出。",
}

func SmallWindowHint(l Language) string { return smallWindowHint[l.norm()] }

var statusScoreLabel = [languageCount]string{
	"Score", "Puntos", "得点", "Pontos", "分数",
}

func StatusScoreLabel(l Language) string { return statusScoreLabel[l.norm()] }

var statusDifficultyLabel = [languageCount]string{
	"Diff", "Nivel", "難易度", "Nível", "难度",
}

func StatusDifficultyLabel(l Language) string { return statusDifficultyLabel[l.norm()] }

var statusPaused = [languageCount]string{
	"PAUSED", "PAUSA", "一時停止", "PAUSADO", "暂停",
}

func StatusPaused(l Language) string { return statusPaused[l.norm()] }

var statusMuted = [languageCount]string{
	"MUTED", "MUTEADO", "消音", "SEM SOM", "静音",
}

func StatusMuted(l Language) string { return statusMuted[l.norm()] }

var infoBestLabel = [languageCount]string{
	"Best", "Mejor", "最高", "Melhor", "最佳",
}

func InfoBestLabel(l Language) string { return infoBestLabel[l.norm()] }

var infoPaceLabel = [languageCount]string{
	"Pace", "Ritmo", "速度", "Ritmo", "速度",
}

func InfoPaceLabel(l Language) string { return infoPaceLabel[l.norm()] }

var infoEffectLabel = [languageCount]string{
	"Effect", "Efecto", "効果", "Efeito", "效果",
}

func InfoEffectLabel(l Language) string { return infoEffectLabel[l.norm()] }

var gameOverTitle = [languageCount]string{
	"GAME OVER!", "FIN DEL JUEGO", "ゲームオーバー", "FIM DE JOGO", "游戏结束",
}

func GameOverTitle(l Language) string { return gameOverTitle[l.norm()] }

var gameOverMenuHint = [languageCount]string{
	"Press SPACE for menu",
	"Pulsa ESPACIO para menú",
	"SPACEでメニューへ",
	"Pressione ESPAÇO para o menu",
	"按 SPACE 返回菜单",
}

func GameOverMenuHint(l Language) string { return gameOverMenuHint[l.norm()] }

var gameOverQuitHint = [languageCount]string{
	"or 'q' to quit", "o 'q' para salir", "'q'で終了", "ou 'q' para sair", "或按 'q' 退出",
}

func GameOverQuitHint(l Language) string { return gameOverQuitHint[l.norm()] }

var menuPlay = [languageCount]string{
	"Play", "Jugar", "プレイ", "Jogar", "开始游戏",
}

func MenuPlay(l Language) string { return menuPlay[l.norm()] }

var menuDifficulty = [languageCount]string{
	"Difficulty", "Dificultad", "難易度", "Dificuldade", "难度",
}

func MenuDifficulty(l Language) string { return menuDifficulty[l.norm()] }

var menuHighScores = [languageCount]string{
	"High Scores", "Puntuaciones", "ハイスコア", "Recordes", "最高分",
}

func MenuHighScores(l Language) string { return menuHighScores[l.norm()] }

var menuSettings = [languageCount]string{
	"Settings", "Ajustes", "設定", "Configurações", "设置",
}

func MenuSettings(l Language) string { return menuSettings[l.norm()] }

var menuQuit = [languageCount]string{
	"Quit", "Salir", "終了", "Sair", "退出",
}

func MenuQuit(l Language) string { return menuQuit[l.norm()] }

var menuBack = [languageCount]string{
	"Back", "Volver", "戻る", "Voltar", "返回",
}

func MenuBack(l Language) string { return menuBack[l.norm()] }

var difficultyMenuTitle = [languageCount]string{
	"Select Difficulty", "Selecciona dificultad", "難易度を選択",
	"Selecionar dificuldade", "选择难度",
}

func DifficultyMenuTitle(l Language) string { return difficultyMenuTitle[l.norm()] }

var highScoresMenuTitle = [languageCount]string{
	"High Scores", "Puntuaciones", "ハイスコア", "Recordes", "最高分",
}

func HighScoresMenuTitle(l Language) string { return highScoresMenuTitle[l.norm()] }

var settingsPauseOnFocusLoss = [languageCount]string{
	"Pause on focus loss", "Pausar al perder foco", "フォーカス喪失時に一時停止",
	"Pausar ao perder foco", "失去焦点时暂停",
}

func SettingsPauseOnFocusLossLabel(l Language) string { return settingsPauseOnFocusLoss[l.norm()] }

var settingsSound = [languageCount]string{
	"Sound", "Sonido", "サウンド", "Som", "声音",
}

func SettingsSoundLabel(l Language) string { return settingsSound[l.norm()] }

var settingsResetHighScores = [languageCount]string{
	"Reset high scores", "Borrar puntuaciones", "ハイスコアをリセット",
	"Apagar recordes", "重置最高分",
}

func SettingsResetHighScoresLabel(l Language) string { return settingsResetHighScores[l.norm()] }

var settingOn = [languageCount]string{
	"On", "Sí", "オン", "Sim", "开",
}

func SettingOn(l Language) string { return settingOn[l.norm()] }

var settingOff = [languageCount]string{
	"Off", "No", "オフ", "Não", "关",
}

func SettingOff(l Language) string { return settingOff[l.norm()] }

var confirmYes = [languageCount]string{
	"Yes", "Sí", "はい", "Sim", "是",
}

func ConfirmYes(l Language) string { return confirmYes[l.norm()] }

var confirmNo = [languageCount]string{
	"No", "No", "いいえ", "Não", "否",
}

func ConfirmNo(l Language) string { return confirmNo[l.norm()] }

var resetHighScoresTitle = [languageCount]string{
	"Reset all high scores?", "¿Borrar todas las puntuaciones?",
	"全ハイスコアをリセットしますか？", "Apagar todos os recordes?", "重置所有最高分？",
}

func ResetHighScoresTitle(l Language) string { return resetHighScoresTitle[l.norm()] }

var difficultyLabels = [languageCount][game.DifficultyCount]string{
	{"Easy", "Medium", "Hard", "Extreme"},
	{"Fácil", "Medio", "Difícil", "Extremo"},
	{"簡単", "普通", "難しい", "極限"},
	{"Fácil", "Médio", "Difícil", "Extremo"},
	{"简单", "普通", "困难", "极限"},
}

// DifficultyLabel returns the localized tier name.
func DifficultyLabel(l Language, d game.Difficulty) string {
	if d < game.Easy || d >= game.DifficultyCount {
		d = game.Medium
	}
	return difficultyLabels[l.norm()][d]
}

var speedEffectShort = [languageCount][2]string{
	{"Boost", "Slow"},
	{"Turbo", "Lento"},
	{"加速", "減速"},
	{"Turbo", "Lento"},
	{"加速", "减速"},
}

// SpeedEffectShort returns the HUD label for a running speed effect. Empty
// for power-up types that have no lasting effect.
func SpeedEffectShort(l Language, t game.PowerUpType) string {
	switch t {
	case game.SpeedBoost:
		return speedEffectShort[l.norm()][0]
	case game.SlowDown:
		return speedEffectShort[l.norm()][1]
	}
	return ""
}
