package main

import (
	"connectfour/agent"
	"connectfour/config"
	"connectfour/engine"
	"connectfour/experiments"
	"connectfour/game"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := config.LoadConfig()
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Msgf("Invalid LOG_LEVEL %q, using info", cfg.LogLevel)
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	switch cfg.Mode {
	case "experiment":
		runExperiment(cfg)
	default:
		play(cfg)
	}
}

func play(cfg *config.Config) {
	rng := rand.New(rand.NewSource(resolveSeed(cfg.RandomSeed, time.Now())))

	agents := make([]agent.Agent, 0, 2)
	for i, name := range []string{cfg.Player1, cfg.Player2} {
		kind, err := agent.ParseKind(name)
		if err != nil {
			log.Fatal().Err(err).Msgf("Cannot configure player %d", i+1)
		}
		a, err := agent.New(kind, game.Player(i+1), agent.Settings{Depth: cfg.SearchDepth, Rng: rng})
		if err != nil {
			log.Fatal().Err(err).Msgf("Cannot create player %d", i+1)
		}
		agents = append(agents, a)
	}

	log.Info().Msgf("Starting %dx%d game: %s (X) vs %s (O)", cfg.Rows, cfg.Columns, cfg.Player1, cfg.Player2)
	e := engine.LocalEngine(game.NewBoard(cfg.Rows, cfg.Columns), agents, engine.WithOutput(os.Stdout))
	if _, _, _, err := e.Run(); err != nil {
		log.Fatal().Err(err).Msg("Game aborted")
	}
}

func runExperiment(cfg *config.Config) {
	seed := resolveSeed(cfg.RandomSeed, time.Now())
	log.Info().Msgf("Running strength experiment with %d games per match up, seed %d...", cfg.ExperimentGames, seed)
	summaries, err := experiments.RunStrengthExperiment(experiments.Settings{
		Games:     cfg.ExperimentGames,
		Rows:      cfg.Rows,
		Cols:      cfg.Columns,
		Depth:     cfg.SearchDepth,
		Seed:      seed,
		OutputDir: cfg.ExperimentDir,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Experiment failed")
	}

	for _, s := range summaries {
		log.Info().Msgf("%s(%d) vs %s(%d): %d-%d, %d draws, %.1f moves per game, %.0f nodes per search",
			s.Agent1.Kind, s.Agent1.Depth, s.Agent2.Kind, s.Agent2.Depth,
			s.Agent1Wins, s.Agent2Wins, s.Draws, s.MeanMoves, s.MeanNodes)
	}
	log.Info().Msg("Finished strength experiment.")
}

// resolveSeed returns seed, or a clock based one when seed is 0.
func resolveSeed(seed uint64, now time.Time) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(now.UnixNano())
}
