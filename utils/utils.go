package utils

import (
	"fmt"
	"math"
	"os"
	"time"

	"golang.org/x/term"
)

// Terminal color codes.
const (
	SuccessColor = "\x1b[92m"
	ErrorColor   = "\x1b[31m"
	DefaultColor = "\x1b[39m"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Colorize wraps s in the given color when stdout is a terminal.
func Colorize(s, color string) string {
	if !IsTerminal(os.Stdout) {
		return s
	}
	return color + s + DefaultColor
}

// FormatTime formats time.Duration output to a human readable value.
func FormatTime(d time.Duration) string {
	if d.Seconds() < 60.0 {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	if d.Minutes() < 60.0 {
		remainingSeconds := math.Mod(d.Seconds(), 60)
		return fmt.Sprintf("%dm:%ds", int64(d.Minutes()), int64(remainingSeconds))
	}
	remainingMinutes := math.Mod(d.Minutes(), 60)
	remainingSeconds := math.Mod(d.Seconds(), 60)
	return fmt.Sprintf("%dh:%dm:%ds",
		int64(d.Hours()), int64(remainingMinutes), int64(remainingSeconds))
}

// FormatSize formats a byte count in mebibytes.
func FormatSize(n int64) string {
	return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
}
