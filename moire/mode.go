package moire

import "strings"

// Mode is how the screensaver host asked the program to run
type Mode int

const (
	ModeScreensaver Mode = iota
	ModeConfigure
	ModePreview
)

// ParseMode reads the screensaver host arguments (os.Args[1:]).
//   - none or /s: run the screensaver
//   - /c or /c:<hwnd>: configuration dialog
//   - /p <hwnd> or /p:<hwnd>: preview pane
//
// Only the first argument is significant and matching is case-insensitive.
func ParseMode(args []string) Mode {
	if len(args) == 0 {
		return ModeScreensaver
	}

	arg := strings.ToLower(args[0])
	switch {
	case arg == "/c" || strings.HasPrefix(arg, "/c:"):
		return ModeConfigure
	case arg == "/p" || strings.HasPrefix(arg, "/p:"):
		return ModePreview
	default:
		return ModeScreensaver
	}
}

// Runs reports whether the mode plays the animation
func (m Mode) Runs() bool {
	return m == ModeScreensaver
}
