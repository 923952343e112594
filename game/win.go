package game

// HasWon reports whether player has won. Only the play phase can be won:
// the opponent loses its queen or its anthill, the player reaches the food
// goal, or the opponent is down to a single ant with no food left to rebuild.
func HasWon(gs *GameState, player int) bool {
	if gs.Phase != PlayPhase {
		return false
	}
	ours, ok := gs.Inventory(player)
	if !ok {
		return false
	}
	theirs, ok := gs.Inventory(Opponent(player))
	if !ok {
		return false
	}

	if theirs.Queen() == nil {
		return true
	}
	if anthill := theirs.Anthill(); anthill != nil && anthill.CaptureHealth <= 0 {
		return true
	}
	if ours.FoodCount >= FoodGoal {
		return true
	}
	return theirs.FoodCount == 0 && len(theirs.Ants) == 1
}
