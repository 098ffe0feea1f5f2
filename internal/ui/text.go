package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter renders a kind of CLI output. With colors enabled the text is
// colorized; without them it is wrapped in plain-text markers instead.
type Formatter struct {
	color      *color.Color
	open, shut string
}

func newFormatter(open, shut string, attrs ...color.Attribute) Formatter {
	return Formatter{color: color.New(attrs...), open: open, shut: shut}
}

// Sprint formats the arguments like fmt.Sprint.
func (f Formatter) Sprint(a ...interface{}) string {
	return f.render(fmt.Sprint(a...))
}

// Sprintf formats according to a format specifier like fmt.Sprintf.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	return f.render(fmt.Sprintf(format, a...))
}

func (f Formatter) render(text string) string {
	if colorDisabled() {
		return f.open + text + f.shut
	}
	return f.color.Sprint(text)
}

// EnsureNewline appends a newline to s unless it already ends with one.
func EnsureNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s
	}
	return s + "\n"
}

// colorDisabled reports whether NO_COLOR is set (https://no-color.org/) or
// fatih/color decided the terminal cannot show colors.
func colorDisabled() bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return true
	}
	return color.NoColor
}

var (
	// Code marks commands the user can run. `backticks` without color.
	Code = newFormatter("`", "`", color.FgYellow)

	// Path marks files such as the key store or the public key artifact.
	Path = newFormatter("", "", color.FgYellow)

	// Flag marks CLI flags like --force.
	Flag = newFormatter("", "", color.FgYellow)

	// Success marks completed operations.
	Success = newFormatter("", "", color.FgGreen)

	// Error marks failures.
	Error = newFormatter("", "", color.FgRed)

	// Warning marks risky situations, such as unprotected batch keys.
	Warning = newFormatter("", "", color.FgYellow)

	// Info marks hints and next steps.
	Info = newFormatter("", "", color.FgCyan)

	// Highlight marks user values such as key names and endpoints. 'quoted' without color.
	Highlight = newFormatter("'", "'", color.FgCyan)

	// Muted marks secondary details. (parenthesized) without color.
	Muted = newFormatter("(", ")", color.FgHiBlack)

	// Mnemonic marks recovery phrases.
	Mnemonic = newFormatter("", "", color.FgHiWhite, color.Bold)
)
