package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeoncrawl/internal/ecs"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

func newTestScreen(t *testing.T) *Screen {
	t.Helper()
	s, err := NewScreenFrom(tcell.NewSimulationScreen("UTF-8"))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

// corridorMap is a 10x3 map with a floor row at y=1.
func corridorMap() *world.Map {
	m := world.NewMap(10, 3)
	for x := 1; x < 9; x++ {
		m.SetTile(x, 1, world.TileFloor)
	}
	m.PopulateBlocked()
	return m
}

func reveal(m *world.Map, visible bool, xs ...int) {
	for _, x := range xs {
		idx := m.Index(x, 1)
		m.Revealed[idx] = true
		m.Visible[idx] = visible
	}
}

func fgOf(style tcell.Style) tcell.Color {
	fg, _, _ := style.Decompose()
	return fg
}

func TestRenderTileLayers(t *testing.T) {
	screen := newTestScreen(t)
	m := corridorMap()
	reveal(m, true, 1, 2)
	reveal(m, false, 3)
	m.Revealed[m.Index(0, 1)] = true
	m.Visible[m.Index(0, 1)] = true

	NewRenderer(screen).Render(m, ecs.NewWorld(), "")

	r, style := screen.GetContent(0, 1)
	assert.Equal(t, '#', r)
	assert.Equal(t, tcell.ColorGreen, fgOf(style))

	r, style = screen.GetContent(1, 1)
	assert.Equal(t, '.', r)
	assert.Equal(t, tcell.ColorTeal, fgOf(style))

	r, style = screen.GetContent(3, 1)
	assert.Equal(t, '.', r)
	assert.Equal(t, tcell.ColorDimGray, fgOf(style))

	r, _ = screen.GetContent(5, 1)
	assert.Equal(t, ' ', r, "unrevealed tiles are not drawn")
}

func TestRenderActorsOnlyWhenVisible(t *testing.T) {
	screen := newTestScreen(t)
	m := corridorMap()
	reveal(m, true, 1, 2)
	reveal(m, false, 3)

	w := ecs.NewWorld()
	actor := func(x int, glyph rune) ecs.EntityID {
		id := w.NewEntity()
		w.Positions[id] = ecs.Position{X: x, Y: 1}
		w.Renderables[id] = ecs.Renderable{Glyph: glyph, FG: tcell.ColorYellow, BG: tcell.ColorBlack}
		return id
	}
	player := actor(2, '@')
	w.Players[player] = struct{}{}
	actor(2, 'g') // same tile, drawn under the player
	actor(3, 'o') // remembered tile only

	NewRenderer(screen).Render(m, w, "Turn 1")

	r, _ := screen.GetContent(2, 1)
	assert.Equal(t, '@', r)
	r, _ = screen.GetContent(3, 1)
	assert.Equal(t, '.', r)

	var status []rune
	for x := range 6 {
		r, _ := screen.GetContent(x, 3)
		status = append(status, r)
	}
	assert.Equal(t, "Turn 1", string(status))
}
