package devtools

import (
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"labyrinth/pkg/game/dungeon"
	"labyrinth/pkg/game/renderer"
)

// SaveLayoutHTML saves the room map of l as an HTML file in dir
func SaveLayoutHTML(l *dungeon.Layout, dir string) (string, error) {
	if l == nil {
		return "", errors.New("no layout")
	}

	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("layout-%d-%s.html", l.Seed, timestamp))

	if err := os.WriteFile(filename, []byte(LayoutHTML(l)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write layout screenshot: %w", err)
	}

	return filename, nil
}

// LayoutHTML renders the room map of l as a standalone HTML page
func LayoutHTML(l *dungeon.Layout) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Labyrinth - Layout</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .start { color: #00ff00; font-weight: bold; }
        .boss { color: #ff4444; font-weight: bold; }
        .room { color: #4444ff; }
        .link { color: #666; }
        .stats { color: #888; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&b, "<div class=\"header\">Seed %d</div>\n", l.Seed)
	fmt.Fprintf(&b, "<div class=\"stats\">rooms: %d, sealed doorways: %d", len(l.Rooms), l.Stats.DoorwaysSealed)
	if l.BossRoom != nil {
		fmt.Fprintf(&b, ", boss: %s at %s", html.EscapeString(l.BossRoom.Name()), l.BossRoom.Cell.String())
	}
	b.WriteString("</div>\n<div class=\"map-container\">\n")

	for _, row := range renderer.Canvas(l) {
		b.WriteString("<div class=\"map-row\">")
		for _, glyph := range row {
			if class := glyphClass(glyph); class != "" {
				fmt.Fprintf(&b, "<span class=\"%s\">%c</span>", class, glyph)
				continue
			}
			b.WriteRune(glyph)
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("</div>\n</body>\n</html>\n")
	return b.String()
}

// glyphClass returns the CSS class for a map glyph
func glyphClass(glyph rune) string {
	switch glyph {
	case renderer.GlyphStart:
		return "start"
	case renderer.GlyphBoss:
		return "boss"
	case renderer.GlyphRoom:
		return "room"
	case renderer.GlyphLinkEastW, renderer.GlyphLinkNorthS:
		return "link"
	default:
		return ""
	}
}
