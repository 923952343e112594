package main

import (
	"flag"
	"os"

	"antics/config"
	"antics/experiments"
	"antics/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	games := flag.Int("games", 0, "number of self-play games (overrides config)")
	depth := flag.Int("depth", 0, "search depth for both agents (overrides config)")
	seed := flag.Uint64("seed", 0, "seed for the first agent, the second gets seed+1 (overrides config)")
	out := flag.String("out", "", "directory for experiment records (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Init("info")
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init(cfg.LogLevel)

	if *games > 0 {
		cfg.Games = *games
	}
	for i := range cfg.Agents {
		if *depth > 0 {
			cfg.Agents[i].DepthLimit = *depth
		}
		if *seed > 0 {
			cfg.Agents[i].Seed = *seed + uint64(i)
		}
	}
	if *out != "" {
		cfg.OutputDir = *out
	}

	summary, err := experiments.Run(cfg)
	if err != nil {
		log.Error().Err(err).Msg("self-play failed")
		os.Exit(1)
	}

	log.Info().
		Int("games", summary.Games).
		Int("agent1_wins", summary.Wins[1]).
		Int("agent2_wins", summary.Wins[2]).
		Int("draws", summary.Draws).
		Str("dir", summary.Dir).
		Msg("self-play finished")
}
