package experiments

import (
	"connectfour/agent"
	"connectfour/engine"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/meta"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

const NumGames = meta.EXPERIMENT_GAMES // Per match up

type Settings struct {
	Games     int
	Rows      int
	Cols      int
	Depth     int    // Search depth of the strength experiment agents
	Seed      uint64 // Agents of game i are seeded from Seed+i
	OutputDir string
}

func (s Settings) withDefaults() Settings {
	if s.Games <= 0 {
		s.Games = NumGames
	}
	if s.Rows <= 0 {
		s.Rows = meta.ROWS
	}
	if s.Cols <= 0 {
		s.Cols = meta.COLUMNS
	}
	if s.Depth <= 0 {
		s.Depth = meta.SEARCH_DEPTH
	}
	if s.OutputDir == "" {
		s.OutputDir = meta.EXPERIMENT_DIR
	}
	return s
}

// Summary aggregates the games of one match up. Agent1 always plays as
// Player1; the starting player alternates between games.
type Summary struct {
	Agent1     metrics.AgentConfig
	Agent2     metrics.AgentConfig
	Games      int
	Agent1Wins int
	Agent2Wins int
	Draws      int
	MeanMoves  float64
	MeanNodes  float64 // Per searched move, 0 without searching agents
}

// RunStrengthExperiment pits both search strategies against a random baseline
// and against each other.
func RunStrengthExperiment(settings Settings) ([]Summary, error) {
	settings = settings.withDefaults()
	baseline := metrics.AgentConfig{ID: 0, Kind: string(agent.RandomKind)}
	alphaBeta := metrics.AgentConfig{ID: 1, Kind: string(agent.AlphaBetaKind), Depth: settings.Depth}
	expectimax := metrics.AgentConfig{ID: 2, Kind: string(agent.ExpectimaxKind), Depth: settings.Depth}

	configs := []metrics.AgentConfig{baseline, alphaBeta, expectimax}
	matchUps := [][2]metrics.AgentConfig{
		{alphaBeta, baseline},
		{expectimax, baseline},
		{alphaBeta, expectimax},
	}

	return Run("strength", configs, matchUps, settings)
}

// Run plays every match up, stores the records as CSV under
// OutputDir/name and returns one summary per match up.
func Run(name string, configs []metrics.AgentConfig, matchUps [][2]metrics.AgentConfig, settings Settings) ([]Summary, error) {
	settings = settings.withDefaults()

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summaries := make([]Summary, 0, len(matchUps))

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		config1, config2 := matchUp[0], matchUp[1]
		summary := Summary{Agent1: config1, Agent2: config2}
		moves := []float64{}
		nodes := []float64{}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < settings.Games; i++ {
			starting := game.Player1
			if i%2 == 1 {
				starting = game.Player2
			}

			winner, gameMetric, moveMetrics, err := runGame(config1, config2, starting, settings.Seed+uint64(count), settings)
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
				if mm.Algorithm != "" {
					nodes = append(nodes, float64(mm.Nodes))
				}
			}

			summary.Games++
			switch winner {
			case game.Player1:
				summary.Agent1Wins++
			case game.Player2:
				summary.Agent2Wins++
			default:
				summary.Draws++
			}
			moves = append(moves, float64(gameMetric.TotalMoves))

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}

		summary.MeanMoves = stat.Mean(moves, nil)
		if len(nodes) > 0 {
			summary.MeanNodes = stat.Mean(nodes, nil)
		}
		summaries = append(summaries, summary)

		log.Info().Msgf("completed matchup %d of %d: %d-%d with %d draws", mi+1, len(matchUps), summary.Agent1Wins, summary.Agent2Wins, summary.Draws)
	}

	log.Info().Msgf("completed %s experiment", name)

	err := store(name, settings.OutputDir, configs, gameRecords, moveRecords)
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func store(name, dir string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(dir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(config1, config2 metrics.AgentConfig, starting game.Player, seed uint64, settings Settings) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	rng := rand.New(rand.NewSource(seed))
	agent1, err := createAgent(config1, game.Player1, rng)
	if err != nil {
		return game.NoPlayer, metrics.GameMetric{}, nil, err
	}
	agent2, err := createAgent(config2, game.Player2, rng)
	if err != nil {
		return game.NoPlayer, metrics.GameMetric{}, nil, err
	}

	e := engine.LocalEngine(game.NewBoard(settings.Rows, settings.Cols), []agent.Agent{agent1, agent2}, engine.WithStartingPlayer(starting))
	return e.Run()
}

func createAgent(config metrics.AgentConfig, player game.Player, rng *rand.Rand) (agent.Agent, error) {
	kind, err := agent.ParseKind(config.Kind)
	if err != nil {
		return nil, err
	}
	if kind == agent.HumanKind {
		return nil, fmt.Errorf("agent %d: human agents cannot take part in experiments", config.ID)
	}

	return agent.New(kind, player, agent.Settings{
		Depth:   config.Depth,
		Rng:     rng,
		Metrics: true,
	})
}
