package game

import "fmt"

type MoveType int

const (
	MoveAnt MoveType = iota
	Build
	End
)

func (t MoveType) String() string {
	switch t {
	case MoveAnt:
		return "move"
	case Build:
		return "build"
	case End:
		return "end"
	default:
		return fmt.Sprintf("MoveType(%d)", int(t))
	}
}

// Move is a single action taken during the play phase. Path holds the ant's
// route including its starting cell; BuildType only applies to Build.
type Move struct {
	Type      MoveType
	Path      []Coord
	BuildType UnitType
}

func EndMove() Move {
	return Move{Type: End}
}

// Equal reports whether two moves describe the same action.
func (m Move) Equal(other Move) bool {
	if m.Type != other.Type || len(m.Path) != len(other.Path) {
		return false
	}
	if m.Type == Build && m.BuildType != other.BuildType {
		return false
	}
	for i := range m.Path {
		if m.Path[i] != other.Path[i] {
			return false
		}
	}
	return true
}

func (m Move) String() string {
	switch m.Type {
	case MoveAnt:
		return fmt.Sprintf("move %v", m.Path)
	case Build:
		return fmt.Sprintf("build %s", m.BuildType)
	default:
		return m.Type.String()
	}
}
