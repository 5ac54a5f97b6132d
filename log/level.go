package log

import "strings"

type Level int

const (
	TRACE = Level(iota)
	DEBUG
	INFO
	WARN
	ERROR
	FATAL

	QUIET
)

const (
	lblTrace = "TRACE"
	lblDebug = "DEBUG"
	lblInfo  = "INFO"
	lblWarn  = "WARN"
	lblError = "ERROR"
	lblFatal = "FATAL"
	lblQuiet = "QUIET"
)

const (
	colorReset = "\033[0m"

	colorTrace = "\033[38m"
	colorDebug = "\033[37m"
	colorInfo  = "\033[36m"
	colorWarn  = "\033[33m"
	colorError = "\033[31m"
	colorFatal = "\033[41m"
	colorQuiet = colorReset

	colorTraceBold = "\033[47m"
	colorDebugBold = "\033[100m"
	colorInfoBold  = "\033[106m"
	colorWarnBold  = "\u001B[30m\033[103m"
	colorErrorBold = "\033[101m"
	colorFatalBold = "\033[101m"
	colorQuietBold = ""
)

var levels = [...]struct {
	label, color, bold string
}{
	TRACE: {lblTrace, colorTrace, colorTraceBold},
	DEBUG: {lblDebug, colorDebug, colorDebugBold},
	INFO:  {lblInfo, colorInfo, colorInfoBold},
	WARN:  {lblWarn, colorWarn, colorWarnBold},
	ERROR: {lblError, colorError, colorErrorBold},
	FATAL: {lblFatal, colorFatal, colorFatalBold},
	QUIET: {lblQuiet, colorQuiet, colorQuietBold},
}

func (l Level) valid() bool {
	return l >= TRACE && l <= QUIET
}

func (l Level) String() string {
	if !l.valid() {
		return lblQuiet
	}

	return levels[l].label
}

func (l Level) BoldColor() string {
	if !l.valid() {
		return colorQuietBold
	}

	return levels[l].bold
}

func (l Level) Color() string {
	if !l.valid() {
		return colorQuiet
	}

	return levels[l].color
}

// FromString parses level name case-insensitively. Unknown names mean QUIET.
func FromString(l string) Level {
	for lvl, v := range levels {
		if strings.EqualFold(v.label, l) {
			return Level(lvl)
		}
	}

	return QUIET
}
