package formatter

import "github.com/philipp01105/nslog/core"

// ANSI sequences used for the level tag
const (
	ColorInfo  = "\x1b[0;35m"
	ColorWarn  = "\x1b[0;33m"
	ColorError = "\x1b[0;91m"
	ColorDebug = "\x1b[0;94m"
	ColorReset = "\x1b[0m"
)

// pre-formatted tags so the hot path is a single WriteString
var (
	plainTags = [...]string{
		core.DebugLevel: " (Debug) ",
		core.InfoLevel:  " (Info) ",
		core.WarnLevel:  " (Warn) ",
		core.ErrorLevel: " (Error) ",
	}
	colorTags = [...]string{
		core.DebugLevel: " (" + ColorDebug + "Debug" + ColorReset + ") ",
		core.InfoLevel:  " (" + ColorInfo + "Info" + ColorReset + ") ",
		core.WarnLevel:  " (" + ColorWarn + "Warn" + ColorReset + ") ",
		core.ErrorLevel: " (" + ColorError + "Error" + ColorReset + ") ",
	}
)

// LevelColor returns the ANSI sequence for a level, or "" for unknown levels
func LevelColor(l core.Level) string {
	switch l {
	case core.DebugLevel:
		return ColorDebug
	case core.InfoLevel:
		return ColorInfo
	case core.WarnLevel:
		return ColorWarn
	case core.ErrorLevel:
		return ColorError
	}
	return ""
}

func levelTag(l core.Level, color bool) string {
	if l < 0 || int(l) >= len(plainTags) {
		return " (Unknown) "
	}
	if color {
		return colorTags[l]
	}
	return plainTags[l]
}
