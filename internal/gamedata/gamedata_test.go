package gamedata

import (
	"math/rand"
	"testing"
	"testing/fstest"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadActors(t *testing.T) {
	actors, err := LoadActors()
	require.NoError(t, err)

	assert.Equal(t, "player", actors.Player.ID)
	assert.Equal(t, 6, actors.Player.Sight)
	assert.Equal(t, 30, actors.Player.HP)
	assert.Equal(t, '@', actors.Player.GlyphRune())
	assert.Equal(t, tcell.ColorYellow, actors.Player.Foreground())

	// Verify expected monsters exist
	expectedIDs := map[string]bool{"goblin": false, "orc": false}
	for _, m := range actors.Monsters {
		if _, ok := expectedIDs[m.ID]; ok {
			expectedIDs[m.ID] = true
		}
		assert.Equal(t, 8, m.Sight, m.ID)
	}
	for id, found := range expectedIDs {
		assert.True(t, found, "expected monster %q not found", id)
	}
}

func TestLoadFromReportsErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.json": &fstest.MapFile{Data: []byte("{not json")},
	}

	_, err := LoadFrom[ActorsFile](fsys, "missing.json")
	assert.ErrorContains(t, err, "missing.json")

	_, err = LoadFrom[ActorsFile](fsys, "broken.json")
	assert.ErrorContains(t, err, "failed to parse JSON")
}

func TestActorsFileValidate(t *testing.T) {
	good := ActorsFile{
		Player:   ActorDef{ID: "player"},
		Monsters: []ActorDef{{ID: "rat", SpawnWeight: 1}},
	}
	assert.NoError(t, good.Validate())

	noPlayer := good
	noPlayer.Player = ActorDef{}
	assert.Error(t, noPlayer.Validate())

	noMonsters := good
	noMonsters.Monsters = nil
	assert.Error(t, noMonsters.Validate())

	negative := good
	negative.Monsters = []ActorDef{{ID: "rat", SpawnWeight: -1}}
	assert.Error(t, negative.Validate())
}

func TestMonsterRegistry(t *testing.T) {
	actors := MustLoadActors()
	registry := NewMonsterRegistry(actors.Monsters)

	assert.Equal(t, 2, registry.Count())

	// Test weighted spawning is deterministic with same seed
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))
	for i := 0; i < 10; i++ {
		assert.Equal(t, registry.SpawnRandom(rng1).ID, registry.SpawnRandom(rng2).ID, "spawn %d", i)
	}
}

func TestMonsterRegistryWeights(t *testing.T) {
	registry := NewMonsterRegistry([]ActorDef{
		{ID: "never", SpawnWeight: 0},
		{ID: "always", SpawnWeight: 3},
	})
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		assert.Equal(t, "always", registry.SpawnRandom(rng).ID)
	}

	unweighted := NewMonsterRegistry([]ActorDef{{ID: "a"}, {ID: "b"}})
	assert.NotNil(t, unweighted.SpawnRandom(rng))
	assert.Nil(t, NewMonsterRegistry(nil).SpawnRandom(rng))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"yellow", true},
		{"Red", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseColor(%q) should be invalid, got no error", tt.input)
		}
	}

	c, err := ParseHexColor("#102030")
	require.NoError(t, err)
	assert.Equal(t, tcell.NewRGBColor(0x10, 0x20, 0x30), c)
}

func TestActorDefFallbacks(t *testing.T) {
	def := ActorDef{FG: "nope", BG: ""}
	assert.Equal(t, '?', def.GlyphRune())
	assert.Equal(t, tcell.ColorWhite, def.Foreground())
	assert.Equal(t, tcell.ColorBlack, def.Background())
}
