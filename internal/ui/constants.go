package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPlay     = "▶"
	IconFolder   = "📁"
	IconSearch   = "🔍"
)

// Layout sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 700

	TokenWidth    float32 = 180
	HelpMinHeight float32 = 220

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 420
)

// Terminal geometry
const (
	TerminalMinRows  = 8
	TerminalMinCols  = 40
	TerminalMaxLines = 2000
	TerminalCellText = "M"
)
