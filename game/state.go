package game

import (
	"fmt"
	"slices"
)

type Coord struct {
	X int
	Y int
}

// InBounds reports whether c lies on the board.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < BoardLength && c.Y >= 0 && c.Y < BoardLength
}

// Flip mirrors c through the centre of the board.
func (c Coord) Flip() Coord {
	return Coord{X: BoardLength - 1 - c.X, Y: BoardLength - 1 - c.Y}
}

func (c Coord) Neighbors() []Coord {
	candidates := []Coord{{c.X, c.Y - 1}, {c.X + 1, c.Y}, {c.X, c.Y + 1}, {c.X - 1, c.Y}}
	neighbors := make([]Coord, 0, len(candidates))
	for _, n := range candidates {
		if n.InBounds() {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

type UnitType int

const (
	Queen UnitType = iota
	Worker
	Drone
	Soldier
	RangedSoldier
)

func (t UnitType) String() string {
	switch t {
	case Queen:
		return "queen"
	case Worker:
		return "worker"
	case Drone:
		return "drone"
	case Soldier:
		return "soldier"
	case RangedSoldier:
		return "ranged_soldier"
	default:
		return fmt.Sprintf("UnitType(%d)", int(t))
	}
}

// UnitStat holds the fixed properties of a unit type.
type UnitStat struct {
	Cost   int
	Health int
	Attack int
}

var UnitStats = map[UnitType]UnitStat{
	Queen:         {Cost: 0, Health: 10, Attack: 2},
	Worker:        {Cost: 1, Health: 4, Attack: 1},
	Drone:         {Cost: 1, Health: 5, Attack: 1},
	Soldier:       {Cost: 2, Health: 10, Attack: 2},
	RangedSoldier: {Cost: 2, Health: 4, Attack: 1},
}

type ConstrType int

const (
	Anthill ConstrType = iota
	Tunnel
	Grass
	Food
)

func (t ConstrType) String() string {
	switch t {
	case Anthill:
		return "anthill"
	case Tunnel:
		return "tunnel"
	case Grass:
		return "grass"
	case Food:
		return "food"
	default:
		return fmt.Sprintf("ConstrType(%d)", int(t))
	}
}

// AnthillCaptureHealth is the number of enemy-occupied turn ends an anthill survives.
const AnthillCaptureHealth = 3

type Ant struct {
	Coords   Coord
	Type     UnitType
	Player   int
	Health   int
	Carrying bool
	HasMoved bool
}

func NewAnt(coords Coord, unit UnitType, player int) Ant {
	return Ant{Coords: coords, Type: unit, Player: player, Health: UnitStats[unit].Health}
}

type Construction struct {
	Coords        Coord
	Type          ConstrType
	CaptureHealth int
}

func NewConstruction(coords Coord, constr ConstrType) Construction {
	c := Construction{Coords: coords, Type: constr}
	if constr == Anthill {
		c.CaptureHealth = AnthillCaptureHealth
	}
	return c
}

// Inventory is everything a single player (or the neutral side) owns.
type Inventory struct {
	Player    int
	Ants      []Ant
	Constrs   []Construction
	FoodCount int
}

// Queen returns the player's queen, or nil once it has been killed.
func (inv *Inventory) Queen() *Ant {
	for i := range inv.Ants {
		if inv.Ants[i].Type == Queen {
			return &inv.Ants[i]
		}
	}
	return nil
}

// Anthill returns the player's anthill, or nil before it has been placed.
func (inv *Inventory) Anthill() *Construction {
	for i := range inv.Constrs {
		if inv.Constrs[i].Type == Anthill {
			return &inv.Constrs[i]
		}
	}
	return nil
}

func (inv Inventory) copy() *Inventory {
	return &Inventory{
		Player:    inv.Player,
		Ants:      slices.Clone(inv.Ants),
		Constrs:   slices.Clone(inv.Constrs),
		FoodCount: inv.FoodCount,
	}
}

// Cell is a read-only view of one board square.
type Cell struct {
	Coords Coord
	Ant    *Ant
	Constr *Construction
}

// GameState is the full state of a match. Inventories are ordered by player id
// with the neutral inventory last.
type GameState struct {
	Inventories []*Inventory
	Phase       Phase
	WhoseTurn   int
}

func NewGameState(phase Phase, whoseTurn int) *GameState {
	return &GameState{
		Inventories: []*Inventory{
			{Player: PlayerOne},
			{Player: PlayerTwo},
			{Player: Neutral},
		},
		Phase:     phase,
		WhoseTurn: whoseTurn,
	}
}

// Copy returns a deep copy of the state.
func (gs *GameState) Copy() *GameState {
	inventories := make([]*Inventory, len(gs.Inventories))
	for i, inv := range gs.Inventories {
		inventories[i] = inv.copy()
	}
	return &GameState{
		Inventories: inventories,
		Phase:       gs.Phase,
		WhoseTurn:   gs.WhoseTurn,
	}
}

// Inventory looks up the inventory owned by player.
func (gs *GameState) Inventory(player int) (*Inventory, bool) {
	for _, inv := range gs.Inventories {
		if inv.Player == player {
			return inv, true
		}
	}
	return nil, false
}

// AntList returns copies of the ants owned by player (or everyone for
// AnyPlayer) whose type is one of types. No types means all types.
func (gs *GameState) AntList(player int, types ...UnitType) []Ant {
	var ants []Ant
	for _, inv := range gs.Inventories {
		if player != AnyPlayer && inv.Player != player {
			continue
		}
		for _, ant := range inv.Ants {
			if len(types) == 0 || slices.Contains(types, ant.Type) {
				ants = append(ants, ant)
			}
		}
	}
	return ants
}

// ConstrList returns copies of the constructions owned by player (or everyone
// for AnyPlayer) whose type is one of types. No types means all types.
func (gs *GameState) ConstrList(player int, types ...ConstrType) []Construction {
	var constrs []Construction
	for _, inv := range gs.Inventories {
		if player != AnyPlayer && inv.Player != player {
			continue
		}
		for _, constr := range inv.Constrs {
			if len(types) == 0 || slices.Contains(types, constr.Type) {
				constrs = append(constrs, constr)
			}
		}
	}
	return constrs
}

// CellAt reports what occupies c. The returned pointers are copies.
func (gs *GameState) CellAt(c Coord) Cell {
	cell := Cell{Coords: c}
	for _, inv := range gs.Inventories {
		for _, ant := range inv.Ants {
			if ant.Coords == c {
				cell.Ant = &ant
			}
		}
		for _, constr := range inv.Constrs {
			if constr.Coords == c {
				cell.Constr = &constr
			}
		}
	}
	return cell
}

// Flip returns a copy of the state mirrored so the second player sees its own
// side in rows 0-3.
func (gs *GameState) Flip() *GameState {
	flipped := gs.Copy()
	for _, inv := range flipped.Inventories {
		for i := range inv.Ants {
			inv.Ants[i].Coords = inv.Ants[i].Coords.Flip()
		}
		for i := range inv.Constrs {
			inv.Constrs[i].Coords = inv.Constrs[i].Coords.Flip()
		}
	}
	return flipped
}

// FlipMove mirrors the coordinates of a move made on a flipped board.
func FlipMove(move Move) Move {
	if move.Path == nil {
		return move
	}
	flipped := move
	flipped.Path = make([]Coord, len(move.Path))
	for i, c := range move.Path {
		flipped.Path[i] = c.Flip()
	}
	return flipped
}
