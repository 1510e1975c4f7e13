package gamedata

import (
	"errors"

	"github.com/gdamore/tcell/v2"
)

// ActorDef defines the player or a monster kind loaded from JSON.
type ActorDef struct {
	ID          string `json:"id"`          // Unique identifier (e.g., "goblin")
	Name        string `json:"name"`        // Display name (e.g., "Goblin")
	Glyph       string `json:"glyph"`       // Single character for rendering (e.g., "g")
	FG          string `json:"fg"`          // Foreground color, hex or tcell name
	BG          string `json:"bg"`          // Background color, hex or tcell name
	HP          int    `json:"hp"`          // Base hit points
	Defense     int    `json:"defense"`     // Base defense value
	Power       int    `json:"power"`       // Base attack power
	Sight       int    `json:"sight"`       // Viewshed range in tiles
	SpawnWeight int    `json:"spawnWeight"` // Relative spawn frequency (monsters only)
}

// GlyphRune returns the glyph as a rune for rendering.
func (a *ActorDef) GlyphRune() rune {
	for _, r := range a.Glyph {
		return r
	}
	return '?'
}

// Foreground returns the foreground as a tcell.Color, white if unparsable.
func (a *ActorDef) Foreground() tcell.Color {
	return colorOr(a.FG, tcell.ColorWhite)
}

// Background returns the background as a tcell.Color, black if unparsable.
func (a *ActorDef) Background() tcell.Color {
	return colorOr(a.BG, tcell.ColorBlack)
}

func colorOr(value string, fallback tcell.Color) tcell.Color {
	color, err := ParseColor(value)
	if err != nil {
		return fallback
	}
	return color
}

// ActorsFile represents the structure of actors.json.
type ActorsFile struct {
	Player   ActorDef   `json:"player"`
	Monsters []ActorDef `json:"monsters"`
}

// Validate checks the fields the simulation relies on.
func (f *ActorsFile) Validate() error {
	if f.Player.ID == "" {
		return errors.New("actors: player definition missing")
	}
	if len(f.Monsters) == 0 {
		return errors.New("actors: no monsters defined")
	}
	for _, m := range f.Monsters {
		if m.SpawnWeight < 0 {
			return errors.New("actors: negative spawn weight for " + m.ID)
		}
	}
	return nil
}

// LoadActors loads actor definitions from the embedded actors.json file.
func LoadActors() (*ActorsFile, error) {
	file, err := Load[ActorsFile]("actors.json")
	if err != nil {
		return nil, err
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// MustLoadActors loads actor definitions, panicking on error.
func MustLoadActors() *ActorsFile {
	actors, err := LoadActors()
	if err != nil {
		panic(err)
	}
	return actors
}
