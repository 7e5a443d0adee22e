package util

import "github.com/mattn/go-runewidth"

// GetDisplayWidth calculates the actual display width of a string, accounting for wide runes
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadRight pads s with spaces to the given display width.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Truncate shortens s to width display columns, marking the cut with "…".
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}
