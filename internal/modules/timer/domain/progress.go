package domain

import (
	"fmt"
	"strings"
)

const (
	BarWidth   = 50
	FilledCell = "█"
	EmptyCell  = "-"
)

func clamp(p float64) float64 {
	switch {
	case p != p, p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

// FilledCells is the number of filled segments for progress p over width cells.
func FilledCells(p float64, width int) int {
	if width <= 0 {
		return 0
	}
	filled := int(clamp(p) * float64(width))
	if filled > width {
		filled = width
	}
	return filled
}

// RenderBar draws "[███---] 50.0%" without any styling.
func RenderBar(p float64, width int) string {
	p = clamp(p)
	filled := FilledCells(p, width)
	empty := width - filled
	if empty < 0 {
		empty = 0
	}
	return fmt.Sprintf("[%s%s] %.1f%%", strings.Repeat(FilledCell, filled), strings.Repeat(EmptyCell, empty), p*100)
}
