package ui

import (
	"fmt"

	"matrix-bg/internal/core"
)

// overlayLines flattens a snapshot into "Label: value" rows with one header
// row per group.
func overlayLines(snap core.ParameterSnapshot) []string {
	var lines []string
	for _, g := range snap.Groups {
		lines = append(lines, g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

// widest returns the length in runes of the longest line.
func widest(lines []string) int {
	w := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > w {
			w = n
		}
	}
	return w
}
