package errors

import "strings"

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// colorEnabled controls whether ANSI colors are used.
var colorEnabled = true

// DisableColors disables ANSI color output.
func DisableColors() {
	colorEnabled = false
}

func color(code, text string) string {
	if !colorEnabled {
		return text
	}
	return code + text + colorReset
}

// Format returns a formatted error message for terminal display.
func (e *StrataError) Format() string {
	var b strings.Builder

	b.WriteString("\n")
	if e.Code != "" {
		b.WriteString(color(colorRed+colorBold, "ERROR "))
		b.WriteString(color(colorBold, e.Code+": "))
	} else {
		b.WriteString(color(colorRed+colorBold, "ERROR: "))
	}
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Detail != "" {
		b.WriteString("\n  " + e.Detail + "\n")
	}
	if e.Wrapped != nil {
		b.WriteString("\n  " + color(colorGray, "cause: "+e.Wrapped.Error()) + "\n")
	}
	if e.Suggestion != "" {
		b.WriteString("\n  " + color(colorYellow, "hint: ") + e.Suggestion + "\n")
	}

	return b.String()
}
