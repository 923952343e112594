package game

// Board and goal constants shared by the rules and the agent.
const (
	BoardLength = 10
	FoodGoal    = 11
)

type Phase int

const (
	SetupPhase1 Phase = iota
	SetupPhase2
	PlayPhase
)

// Player ids. The neutral inventory owns the food and grass placed during setup.
const (
	PlayerOne = 0
	PlayerTwo = 1
	Neutral   = 2

	// AnyPlayer matches constructions and ants regardless of owner.
	AnyPlayer = -1
)

// Opponent returns the other active player id.
func Opponent(player int) int {
	return (player + 1) % 2
}

// Rules is the collaborator that knows how the game works. States are never
// mutated; NextState always returns a fresh copy.
type Rules interface {
	LegalMoves(gs *GameState) []Move
	NextState(gs *GameState, move Move) (*GameState, error)
}

// Evaluate scores a state from player's point of view. Scores are in [0,1]
// for ordinary positions with 1 and 0 reserved for decided games.
type Evaluate func(gs *GameState, player int) (float64, error)
