// Package ui formats text printed by the soundness commands.
//
// Each Formatter names a kind of output rather than a color:
//
//	ui.Success.Sprint("✓") + " Generated new key pair " + ui.Highlight.Sprint("alice")
//	ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("soundness list-keys")
//	ui.Mnemonic.Sprint(words)
//
// Colors come from fatih/color. They are turned off when NO_COLOR is set
// (any value) or when the output is not a color-capable terminal. Without
// colors, Code is wrapped in `backticks`, Highlight in 'quotes' and Muted in
// (parentheses); the other formatters print the text unchanged.
package ui
