package engine

import "github.com/ericogr/hexcrusade/internal/game"

// AngelFaithThreshold is the faith a holy hero needs on the castle.
const AngelFaithThreshold = 5

// EvaluateVictory returns the first satisfied trigger, scanning players in
// seat order and, per player, demon king before angel before revelation.
// Dead heroes never trigger. nil means the game goes on.
func EvaluateVictory(st game.GameState) *game.VictoryResult {
	for i := range st.Players {
		p := &st.Players[i]
		if p.IsDead {
			continue
		}
		onCastle := false
		if st.Board != nil {
			if t, ok := st.Board.Tile(p.Position); ok && t.Type == game.TileCastle {
				onCastle = true
			}
		}
		if p.State == game.StateCorrupt && p.CorruptDiceValue() == MaxCorruptDie && onCastle {
			return &game.VictoryResult{
				VictoryType:     game.VictoryDemonKing,
				TriggerPlayerID: p.ID,
				WinnerID:        bestBy(st.Players, func(q game.Player) int { return q.DevilScore - q.FaithScore }),
			}
		}
		if p.State == game.StateHoly && p.FaithScore >= AngelFaithThreshold && onCastle {
			return &game.VictoryResult{
				VictoryType:     game.VictoryAngel,
				TriggerPlayerID: p.ID,
				WinnerID:        bestBy(st.Players, func(q game.Player) int { return q.FaithScore - q.DevilScore }),
			}
		}
		for _, r := range p.CompletedRevelations {
			if r.IsGameEnd {
				return &game.VictoryResult{VictoryType: game.VictoryRevelation, TriggerPlayerID: p.ID, WinnerID: p.ID}
			}
		}
	}
	return nil
}

// bestBy returns the id with the highest score; the earliest seat wins ties.
func bestBy(players []game.Player, score func(game.Player) int) string {
	best, bestScore := "", 0
	for i, p := range players {
		if s := score(p); i == 0 || s > bestScore {
			best, bestScore = p.ID, s
		}
	}
	return best
}
