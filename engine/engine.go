package engine

import (
	"antics/experiments/metrics"
	"antics/game"
)

const MaxMoves = 10000

// NoWinner is reported when a game stops at the move limit.
const NoWinner = -1

type Engine interface {
	// Run starts a game till there's a winner or a max number of moves is reached
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

// Player is anything that can take the decisions the engine asks for. States
// handed to a player are always from its own point of view.
type Player interface {
	Player() int
	GetPlacement(state *game.GameState) ([]game.Coord, error)
	GetMove(state *game.GameState) (game.Move, metrics.SearchMetric, error)
	GetAttack(state *game.GameState, attacker game.Ant, targets []game.Coord) (game.Coord, error)
}
