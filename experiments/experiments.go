package experiments

import (
	"fmt"

	"antics/agent"
	"antics/config"
	"antics/engine"
	"antics/experiments/metrics"
	"antics/game"
	"antics/searcher"

	"github.com/rs/zerolog/log"
)

const selfPlay = "self_play"

// Summary counts wins per agent id over a run. Draws are games that hit the
// move limit.
type Summary struct {
	Games int
	Wins  map[int]int
	Draws int
	Dir   string // Empty when no records were written
}

// AgentConfigs numbers the two agents in cfg from 1.
func AgentConfigs(cfg *config.Config) []metrics.AgentConfig {
	configs := make([]metrics.AgentConfig, 0, len(cfg.Agents))
	for i, a := range cfg.Agents {
		configs = append(configs, metrics.AgentConfig{
			ID:         i + 1,
			DepthLimit: a.DepthLimit,
			Seed:       a.Seed,
		})
	}
	return configs
}

// Run plays cfg.Games games between the two configured agents, swapping seats
// every game, and writes the records under cfg.OutputDir if it is set.
func Run(cfg *config.Config) (Summary, error) {
	configs := AgentConfigs(cfg)
	summary := Summary{Games: cfg.Games, Wins: map[int]int{}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment with %d games...", selfPlay, cfg.Games)

	for i := 0; i < cfg.Games; i++ {
		seated := []metrics.AgentConfig{configs[0], configs[1]}
		if i%2 == 1 {
			seated[0], seated[1] = seated[1], seated[0]
		}

		winner, gameMetric, moveMetrics, err := runGame(seated, cfg.MaxMoves, uint64(i))
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}

		id := i + 1
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Agent1:     seated[game.PlayerOne].ID,
			Agent2:     seated[game.PlayerTwo].ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       id,
				MoveMetric: mm,
			})
		}

		if winner == engine.NoWinner {
			summary.Draws++
			log.Info().Msgf("completed game %d of %d without a winner", id, cfg.Games)
			continue
		}
		summary.Wins[seated[winner].ID]++
		log.Info().Msgf("completed game %d of %d with winner: agent %d", id, cfg.Games, seated[winner].ID)
	}

	log.Info().Msgf("completed %s experiment", selfPlay)

	if cfg.OutputDir == "" {
		return summary, nil
	}
	dir, err := store(cfg.OutputDir, configs, gameRecords, moveRecords)
	if err != nil {
		return summary, err
	}
	summary.Dir = dir
	return summary, nil
}

// runGame seats an agent per config and plays one game. offset varies the
// seeds between games so a fixed seed still gives a series of distinct games.
func runGame(seated []metrics.AgentConfig, maxMoves int, offset uint64) (int, metrics.GameMetric, []metrics.MoveMetric, error) {
	rules := game.NewStandardRules()
	players := make([]engine.Player, 0, len(seated))
	for seat, config := range seated {
		players = append(players, createAgent(seat, rules, config, offset))
	}

	e, err := engine.LocalEngine(players, rules, maxMoves)
	if err != nil {
		return engine.NoWinner, metrics.GameMetric{}, nil, err
	}
	return e.Run()
}

func createAgent(player int, rules game.Rules, config metrics.AgentConfig, offset uint64) *agent.Agent {
	options := []agent.Option{
		agent.WithSearchOptions(
			searcher.WithDepthLimit(config.DepthLimit),
			searcher.WithMetrics(),
		),
	}
	if config.Seed != 0 {
		options = append(options, agent.WithSeed(config.Seed+offset))
	}
	return agent.New(player, rules, options...)
}

func store(root string, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, selfPlay)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}
