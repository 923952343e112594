package game

import (
	"errors"
	"fmt"
)

var ErrMoverInventoryNotFound = errors.New("mover inventory not found")

// UtilityNormalizer is a soft upper bound on the raw feature score, not a true
// maximum. Large food counts can push the utility above 1.
const UtilityNormalizer = 166.0

// UtilityFloor keeps every live position strictly above the 0 reserved for losses.
const UtilityFloor = 0.03

// EvaluateUtility scores gs for player. Won and lost games score 1 and 0;
// otherwise the features are read from the side whose turn it is in gs,
// except for carrying workers which always belong to player.
func EvaluateUtility(gs *GameState, player int) (float64, error) {
	if HasWon(gs, player) {
		return 1.0, nil
	}
	if HasWon(gs, Opponent(player)) {
		return 0.0, nil
	}

	ours, ok := gs.Inventory(gs.WhoseTurn)
	if !ok {
		return 0, fmt.Errorf("player %d: %w", gs.WhoseTurn, ErrMoverInventoryNotFound)
	}
	enemyAnts := 0
	if theirs, ok := gs.Inventory(Opponent(gs.WhoseTurn)); ok {
		enemyAnts = len(theirs.Ants)
	}

	utility := float64(ours.FoodCount) * 5
	utility += ownArmyBonus(len(ours.Ants))
	utility += enemyArmyBonus(enemyAnts)

	for _, worker := range gs.AntList(player, Worker) {
		if worker.Carrying {
			utility += 4
		}
	}

	return utility/UtilityNormalizer + UtilityFloor, nil
}

// ownArmyBonus rewards an army of three or four ants. Fewer is weak and more
// wastes food.
func ownArmyBonus(ants int) float64 {
	switch {
	case ants == 2:
		return 5
	case ants == 3:
		return 20
	case ants == 4:
		return 40
	case ants > 4:
		return 10
	default:
		return 0
	}
}

// enemyArmyBonus rewards a small enemy army. Counts outside 1-4 add nothing.
func enemyArmyBonus(ants int) float64 {
	switch ants {
	case 1:
		return 40
	case 2:
		return 30
	case 3:
		return 20
	case 4:
		return 10
	default:
		return 0
	}
}
