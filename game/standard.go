package game

import (
	"fmt"
	"slices"
)

// StandardRules is a compact rule set for the ant game: ants step one cell at
// a time, workers ferry food home and the anthill builds new ants.
type StandardRules struct {
	Buildable []UnitType
}

func NewStandardRules() *StandardRules {
	return &StandardRules{
		Buildable: []UnitType{Worker, Soldier},
	}
}

// LegalMoves returns every action available to the player whose turn it is.
// End is always legal during play.
func (sr *StandardRules) LegalMoves(gs *GameState) []Move {
	if gs.Phase != PlayPhase {
		return nil
	}
	inv, ok := gs.Inventory(gs.WhoseTurn)
	if !ok {
		return nil
	}

	var moves []Move
	for _, ant := range inv.Ants {
		if ant.HasMoved {
			continue
		}
		for _, to := range ant.Coords.Neighbors() {
			if gs.CellAt(to).Ant == nil {
				moves = append(moves, Move{Type: MoveAnt, Path: []Coord{ant.Coords, to}})
			}
		}
	}

	if anthill := inv.Anthill(); anthill != nil && gs.CellAt(anthill.Coords).Ant == nil {
		for _, unit := range sr.Buildable {
			if UnitStats[unit].Cost <= inv.FoodCount {
				moves = append(moves, Move{Type: Build, BuildType: unit})
			}
		}
	}

	return append(moves, EndMove())
}

// NextState applies move for the player whose turn it is and returns the
// resulting state. Attacks are not resolved here; see Attack.
func (sr *StandardRules) NextState(gs *GameState, move Move) (*GameState, error) {
	if gs.Phase != PlayPhase {
		return nil, fmt.Errorf("next state during phase %d: %w", gs.Phase, ErrWrongPhase)
	}
	next := gs.Copy()
	inv, ok := next.Inventory(next.WhoseTurn)
	if !ok {
		return nil, fmt.Errorf("player %d: %w", next.WhoseTurn, ErrMoverInventoryNotFound)
	}

	switch move.Type {
	case MoveAnt:
		if err := sr.moveAnt(next, inv, move.Path); err != nil {
			return nil, err
		}
	case Build:
		if err := sr.build(next, inv, move.BuildType); err != nil {
			return nil, err
		}
	case End:
		sr.endTurn(next, inv)
	default:
		return nil, fmt.Errorf("move type %v: %w", move.Type, ErrIllegalMove)
	}
	return next, nil
}

func (sr *StandardRules) moveAnt(gs *GameState, inv *Inventory, path []Coord) error {
	if len(path) < 2 {
		return fmt.Errorf("path %v too short: %w", path, ErrIllegalMove)
	}
	from, to := path[0], path[len(path)-1]
	i := slices.IndexFunc(inv.Ants, func(a Ant) bool { return a.Coords == from })
	if i < 0 {
		return fmt.Errorf("no ant at %v: %w", from, ErrIllegalMove)
	}
	if inv.Ants[i].HasMoved || !to.InBounds() || gs.CellAt(to).Ant != nil {
		return fmt.Errorf("ant at %v cannot reach %v: %w", from, to, ErrIllegalMove)
	}

	ant := &inv.Ants[i]
	ant.Coords = to
	ant.HasMoved = true

	if ant.Type != Worker {
		return nil
	}
	constr := gs.CellAt(to).Constr
	switch {
	case constr == nil:
	case !ant.Carrying && constr.Type == Food:
		ant.Carrying = true
	case ant.Carrying && (constr.Type == Anthill || constr.Type == Tunnel) && ownsConstr(inv, to):
		ant.Carrying = false
		inv.FoodCount++
	}
	return nil
}

func (sr *StandardRules) build(gs *GameState, inv *Inventory, unit UnitType) error {
	if !slices.Contains(sr.Buildable, unit) {
		return fmt.Errorf("cannot build %v: %w", unit, ErrIllegalMove)
	}
	anthill := inv.Anthill()
	if anthill == nil || gs.CellAt(anthill.Coords).Ant != nil {
		return fmt.Errorf("anthill blocked: %w", ErrIllegalMove)
	}
	cost := UnitStats[unit].Cost
	if inv.FoodCount < cost {
		return fmt.Errorf("%v costs %d food, have %d: %w", unit, cost, inv.FoodCount, ErrIllegalMove)
	}
	inv.FoodCount -= cost
	ant := NewAnt(anthill.Coords, unit, inv.Player)
	ant.HasMoved = true
	inv.Ants = append(inv.Ants, ant)
	return nil
}

// endTurn wears down any anthill an enemy ant is sitting on and passes play.
func (sr *StandardRules) endTurn(gs *GameState, inv *Inventory) {
	for i := range inv.Ants {
		inv.Ants[i].HasMoved = false
	}
	for _, owner := range gs.Inventories {
		anthill := owner.Anthill()
		if anthill == nil {
			continue
		}
		if occupant := gs.CellAt(anthill.Coords).Ant; occupant != nil && occupant.Player != owner.Player {
			anthill.CaptureHealth--
		}
	}
	gs.WhoseTurn = Opponent(gs.WhoseTurn)
}

// Attack resolves an attack by the ant at attacker on the enemy ant at target
// and returns the resulting state. Ants reduced to zero health are removed.
func (sr *StandardRules) Attack(gs *GameState, attacker, target Coord) (*GameState, error) {
	next := gs.Copy()
	cell := next.CellAt(attacker)
	if cell.Ant == nil {
		return nil, fmt.Errorf("no ant at %v: %w", attacker, ErrUnknownAttacker)
	}
	victim, ok := next.Inventory(Opponent(cell.Ant.Player))
	if !ok {
		return nil, fmt.Errorf("player %d: %w", Opponent(cell.Ant.Player), ErrMoverInventoryNotFound)
	}
	i := slices.IndexFunc(victim.Ants, func(a Ant) bool { return a.Coords == target })
	if i < 0 || !slices.Contains(attacker.Neighbors(), target) {
		return nil, fmt.Errorf("no enemy at %v next to %v: %w", target, attacker, ErrIllegalMove)
	}

	victim.Ants[i].Health -= UnitStats[cell.Ant.Type].Attack
	if victim.Ants[i].Health <= 0 {
		victim.Ants = slices.Delete(victim.Ants, i, i+1)
	}
	return next, nil
}

// AttackTargets lists the enemy ants adjacent to the ant at c.
func AttackTargets(gs *GameState, c Coord) []Coord {
	attacker := gs.CellAt(c).Ant
	if attacker == nil {
		return nil
	}
	var targets []Coord
	for _, n := range c.Neighbors() {
		if ant := gs.CellAt(n).Ant; ant != nil && ant.Player != attacker.Player {
			targets = append(targets, n)
		}
	}
	return targets
}

func ownsConstr(inv *Inventory, c Coord) bool {
	return slices.ContainsFunc(inv.Constrs, func(constr Construction) bool { return constr.Coords == c })
}
