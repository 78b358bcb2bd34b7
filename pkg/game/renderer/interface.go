package renderer

import (
	"fmt"
	"io"

	"labyrinth/pkg/game/dungeon"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleRoom
	StyleStart
	StyleBoss
	StyleLink
	StyleSealed
	StyleHeading
	StyleDenied
	StyleSubtle
)

// Renderer defines the interface for layout rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, markup, etc.)
	Init()

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// RenderLayout draws the room map of a layout
	RenderLayout(w io.Writer, l *dungeon.Layout)

	// RenderSummary writes generation statistics and the boss pick
	RenderSummary(w io.Writer, l *dungeon.Layout)

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return fmt.Sprintf(msg, args...)
}

// RenderLayout draws a layout with the current renderer
func RenderLayout(w io.Writer, l *dungeon.Layout) {
	if Current != nil {
		Current.RenderLayout(w, l)
	}
}

// RenderSummary writes a layout summary with the current renderer
func RenderSummary(w io.Writer, l *dungeon.Layout) {
	if Current != nil {
		Current.RenderSummary(w, l)
	}
}
