package build

import (
	"fmt"

	"github.com/fatih/color"
)

var (
	sectionColor = color.New(color.FgBlue, color.Bold)
	stepColor    = color.New(color.FgHiBlack)
	hintColor    = color.New(color.FgCyan)
)

// Prints a section header for user-facing progress output.
func section(title string) {
	fmt.Println()
	_, _ = sectionColor.Printf("▸ %s\n", title)
}

// Prints a single progress step.
func step(msg string) {
	_, _ = stepColor.Printf("  %s\n", msg)
}

// Prints a labeled hint followed by an indented value.
func hint(label, value string) {
	fmt.Println()
	fmt.Printf("%s:\n", label)
	_, _ = hintColor.Printf("  %s\n", value)
}
