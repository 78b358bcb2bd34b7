package tui

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"labyrinth/pkg/engine/terminal"
	"labyrinth/pkg/game/dungeon"
	"labyrinth/pkg/game/renderer"
)

// Viewport margins and minimum sizes
const (
	ViewportMinRows   = 7
	ViewportMinCols   = 15
	ViewportTopMargin = 12 // Summary lines printed below the map
)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorRoom    color.Style
	colorStart   color.Style
	colorBoss    color.Style
	colorLink    color.Style
	colorSealed  color.Style
	colorHeading color.Style
	colorDenied  color.Style
	colorSubtle  color.Style

	regexpStringFunctions *regexp.Regexp
}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorRoom = color.Style{color.FgBlue}
	t.colorStart = color.Style{color.FgGreen, color.OpBold}
	t.colorBoss = color.Style{color.FgRed, color.OpBold}
	t.colorLink = color.Style{color.FgGray}
	t.colorSealed = color.Style{color.FgYellow}
	t.colorHeading = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:]+)}`)
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleRoom:
		return t.colorRoom.Sprint(text)
	case renderer.StyleStart:
		return t.colorStart.Sprint(text)
	case renderer.StyleBoss:
		return t.colorBoss.Sprint(text)
	case renderer.StyleLink:
		return t.colorLink.Sprint(text)
	case renderer.StyleSealed:
		return t.colorSealed.Sprint(text)
	case renderer.StyleHeading:
		return t.colorHeading.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	ret := fmt.Sprintf(msg, args...)

	matches := t.regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = dynamicGet(operand)
		case "ROOM":
			val = t.colorRoom.Sprint(operand)
		case "BOSS":
			val = t.colorBoss.Sprint(operand)
		case "SEALED":
			val = t.colorSealed.Sprint(operand)
		case "HEADING":
			val = t.colorHeading.Sprint(dynamicGet(operand))
		default:
			val = t.colorDenied.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// GetViewportSize returns the viewport dimensions based on terminal size
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	termWidth, termHeight := terminal.GetSize()

	cols = termWidth
	rows = termHeight - ViewportTopMargin

	if cols < ViewportMinCols {
		cols = ViewportMinCols
	}
	if rows < ViewportMinRows {
		rows = ViewportMinRows
	}

	return rows, cols
}

// RenderLayout draws the room map, centred and clipped to the terminal width
func (t *TUIRenderer) RenderLayout(w io.Writer, l *dungeon.Layout) {
	canvas := renderer.Canvas(l)
	if len(canvas) == 0 {
		fmt.Fprintln(w, t.colorSubtle.Sprint(dynamicGet("(empty layout)")))
		return
	}

	_, cols := t.GetViewportSize()
	width := len(canvas[0])
	indent := ""
	if width < cols {
		indent = strings.Repeat(" ", (cols-width)/2)
	}

	for _, row := range canvas {
		if len(row) > cols {
			row = row[:cols]
		}
		var b strings.Builder
		b.WriteString(indent)
		for _, glyph := range row {
			b.WriteString(t.renderGlyph(glyph))
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
}

// renderGlyph colours a single map glyph
func (t *TUIRenderer) renderGlyph(glyph rune) string {
	s := string(glyph)
	switch glyph {
	case renderer.GlyphStart:
		return t.colorStart.Sprint(s)
	case renderer.GlyphBoss:
		return t.colorBoss.Sprint(s)
	case renderer.GlyphRoom:
		return t.colorRoom.Sprint(s)
	case renderer.GlyphLinkEastW, renderer.GlyphLinkNorthS:
		return t.colorLink.Sprint(s)
	default:
		return s
	}
}

// RenderSummary writes generation statistics and the boss pick
func (t *TUIRenderer) RenderSummary(w io.Writer, l *dungeon.Layout) {
	fmt.Fprintln(w, t.FormatText("HEADING{Layout summary}"))

	if l == nil {
		fmt.Fprintln(w, t.colorSubtle.Sprint(dynamicGet("(empty layout)")))
		return
	}

	s := l.Stats
	fmt.Fprintln(w, t.FormatText("  GT{Seed}: %d", l.Seed))
	fmt.Fprintln(w, t.FormatText("  GT{Rooms}: %d (GT{branch} %d, GT{fill} %d)", s.Rooms, s.BranchRooms, s.FillRooms))
	fmt.Fprintln(w, t.FormatText("  GT{Doorways sealed}: SEALED{%d}", s.DoorwaysSealed))
	fmt.Fprintln(w, t.FormatText("  GT{Doorways abandoned}: %d", s.DoorwaysAbandoned))
	fmt.Fprintln(w, t.FormatText("  GT{Placement attempts}: %d (GT{grid rejections} %d, GT{overlap rejections} %d)", s.Attempts, s.GridRejections, s.OverlapRejections))

	if l.Start != nil {
		fmt.Fprintln(w, t.FormatText("  GT{Start room}: %s %s", t.colorStart.Sprint(l.Start.Name()), t.colorSubtle.Sprint(l.Start.Cell.String())))
	}
	if l.BossRoom != nil {
		fmt.Fprintln(w, t.FormatText("  GT{Boss room}: %s %s", t.colorBoss.Sprint(l.BossRoom.Name()), t.colorSubtle.Sprint(l.BossRoom.Cell.String())))
	} else {
		fmt.Fprintln(w, t.FormatText("  GT{Boss room}: %s", t.colorDenied.Sprint(dynamicGet("none"))))
	}
}
