package systems

import (
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dungeoncrawl/internal/ecs"
	"github.com/samdwyer/dungeoncrawl/internal/logger"
	"github.com/samdwyer/dungeoncrawl/internal/world"
)

// neighbours lists the eight king moves in the order ties are broken.
var neighbours = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// RunPursuit moves every monster that can see the player one step closer.
// There is no routing around obstacles: if the best step is blocked, or is
// the player's own tile, the monster waits. Returns how many monsters moved.
func RunPursuit(m *world.Map, w *ecs.World, player ecs.Position) int {
	moved := 0
	for _, id := range ecs.Query(w.Positions, w.HasViewshed, w.IsMonster) {
		if w.IsPlayer(id) || !w.Viewsheds[id].CanSee(player) {
			continue
		}

		pos := w.Positions[id]
		if pos == player {
			continue
		}
		dx, dy := StepToward(pos, player)
		fields := logrus.Fields{
			"component": "pursuit",
			"entity":    id,
			"from":      pos,
			"target":    player,
		}
		if pos.Add(dx, dy) == player {
			logger.Log.WithFields(fields).Debug("Adjacent to player, holding.")
			continue
		}
		if !TryMove(m, w, id, dx, dy) {
			logger.Log.WithFields(fields).Debug("Step blocked, waiting.")
			continue
		}
		moved++
	}
	return moved
}

// StepToward returns the king move from 'from' that lands closest to 'to'
// by Euclidean distance.
func StepToward(from, to ecs.Position) (int, int) {
	best := neighbours[0]
	bestDist := from.Add(best[0], best[1]).DistanceSquared(to)
	for _, n := range neighbours[1:] {
		if d := from.Add(n[0], n[1]).DistanceSquared(to); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best[0], best[1]
}
