package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLanguage = "🌐"
	IconFolder   = "📁"
)

// Window sizing
const (
	WindowWidth  float32 = 640
	WindowHeight float32 = 360
	LogoSize     float32 = 32
)

// Text fragments
const (
	LabelSeparator = ": "
)
