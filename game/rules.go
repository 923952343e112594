package game

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrIllegalMove     = errors.New("illegal move")
	ErrWrongPhase      = errors.New("wrong phase")
	ErrBadPlacement    = errors.New("bad placement")
	ErrUnknownAttacker = errors.New("attacker not found")
)

// Placement counts per setup phase.
const (
	SetupPhase1Placements = 11
	SetupPhase2Placements = 2
)

// NewGame returns the empty board both players place their constructions on.
func NewGame() *GameState {
	return NewGameState(SetupPhase1, PlayerOne)
}

// ApplyPlacement places a player's setup constructions. In the first phase the
// coordinates are the anthill, the tunnel and then grass, all on the player's
// own side; in the second phase they are food on the opponent's side. Coordinates
// are given in the placing player's own view and flipped for PlayerTwo.
func ApplyPlacement(gs *GameState, player int, coords []Coord) (*GameState, error) {
	next := gs.Copy()
	placed := make([]Coord, len(coords))
	for i, c := range coords {
		if player == PlayerTwo {
			c = c.Flip()
		}
		if !c.InBounds() || next.CellAt(c).Constr != nil || slices.Contains(placed[:i], c) {
			return nil, fmt.Errorf("coordinate %v: %w", c, ErrBadPlacement)
		}
		placed[i] = c
	}

	inv, ok := next.Inventory(player)
	if !ok {
		return nil, fmt.Errorf("player %d: %w", player, ErrMoverInventoryNotFound)
	}
	neutral, _ := next.Inventory(Neutral)

	switch gs.Phase {
	case SetupPhase1:
		if len(placed) != SetupPhase1Placements {
			return nil, fmt.Errorf("want %d coordinates, got %d: %w", SetupPhase1Placements, len(placed), ErrBadPlacement)
		}
		inv.Constrs = append(inv.Constrs, NewConstruction(placed[0], Anthill), NewConstruction(placed[1], Tunnel))
		for _, c := range placed[2:] {
			neutral.Constrs = append(neutral.Constrs, NewConstruction(c, Grass))
		}
		inv.Ants = append(inv.Ants, NewAnt(placed[0], Queen, player), NewAnt(placed[1], Worker, player))
	case SetupPhase2:
		if len(placed) != SetupPhase2Placements {
			return nil, fmt.Errorf("want %d coordinates, got %d: %w", SetupPhase2Placements, len(placed), ErrBadPlacement)
		}
		for _, c := range placed {
			neutral.Constrs = append(neutral.Constrs, NewConstruction(c, Food))
		}
	default:
		return nil, fmt.Errorf("placement during phase %d: %w", gs.Phase, ErrWrongPhase)
	}

	// Both players place before the phase advances.
	if player == PlayerTwo {
		next.Phase++
		next.WhoseTurn = PlayerOne
	} else {
		next.WhoseTurn = PlayerTwo
	}
	return next, nil
}
