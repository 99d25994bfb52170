package ui

import "github.com/gdamore/tcell/v2"

// MapTop is the first screen row used by the map. Row 0 holds the message.
const MapTop = 2

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the message line and the map rows. Glyphs missing from
// palette use the default style.
func (r *Renderer) Render(rows []string, message string, palette map[rune]tcell.Style) {
	r.screen.Clear()

	r.RenderMessage(message, 0)

	for y, row := range rows {
		x := 0
		for _, ch := range row {
			style, ok := palette[ch]
			if !ok {
				style = tcell.StyleDefault
			}
			r.screen.SetContent(x, MapTop+y, ch, style)
			x++
		}
	}

	r.screen.Show()
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
