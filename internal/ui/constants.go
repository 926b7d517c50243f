package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconVideo    = "🎬"
	IconClose    = "×"
)

// Text fragments
const (
	PathLabelFormat   = "%s: %s"
	FileLabelFormat   = "%s (%s)"
	WindowTitleFormat = "%s v%s"
)

// Layout sizing
const (
	FormMinWidth float32 = 480
	LogoSize     float32 = 32

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 420
)

// VideoMimeTypes restricts file pickers to video files
var VideoMimeTypes = []string{"video/*"}
