package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/ecs"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

var (
	wallVisible    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	floorVisible   = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	tileRemembered = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws revealed tiles and the actors standing on visible ones.
// Revealed tiles out of sight are drawn dimmed, unrevealed tiles not at all.
func (r *Renderer) Render(m *world.Map, w *ecs.World, status string) {
	r.screen.Clear()

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.IsRevealed(x, y) {
				continue
			}
			tile := m.TileAt(x, y)
			r.screen.SetContent(x, y, tile.Rune(), tileStyle(tile, m.IsVisible(x, y)))
		}
	}

	// Player last so it is never hidden under another actor.
	var players []ecs.EntityID
	for _, id := range ecs.Query(w.Renderables, w.HasPosition) {
		if w.IsPlayer(id) {
			players = append(players, id)
			continue
		}
		r.drawActor(m, w, id)
	}
	for _, id := range players {
		r.drawActor(m, w, id)
	}

	if status != "" {
		r.RenderMessage(status, m.Height)
	}
	r.screen.Show()
}

func (r *Renderer) drawActor(m *world.Map, w *ecs.World, id ecs.EntityID) {
	pos := w.Positions[id]
	if !m.IsVisible(pos.X, pos.Y) {
		return
	}
	render := w.Renderables[id]
	style := tcell.StyleDefault.Foreground(render.FG).Background(render.BG)
	r.screen.SetContent(pos.X, pos.Y, render.Glyph, style)
}

// tileStyle returns the style for a revealed tile.
func tileStyle(tile world.Tile, visible bool) tcell.Style {
	if !visible {
		return tileRemembered
	}
	if tile == world.TileWall {
		return wallVisible
	}
	return floorVisible
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
