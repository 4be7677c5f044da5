package config

import (
	"connectfour/meta"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Mode            string // "play" or "experiment"
	Player1         string // Agent kind of the first player
	Player2         string
	Rows            int
	Columns         int
	SearchDepth     int
	RandomSeed      uint64 // 0 seeds from the clock
	LogLevel        string
	ExperimentGames int
	ExperimentDir   string
}

var AppConfig *Config

func LoadConfig() *Config {
	mode := strings.ToLower(GetEnv("MODE", "play"))
	if mode != "play" && mode != "experiment" {
		log.Warn().Msgf("Invalid value for MODE: %s, using default: play", mode)
		mode = "play"
	}

	AppConfig = &Config{
		Mode:            mode,
		Player1:         GetEnv("PLAYER1", "human"),
		Player2:         GetEnv("PLAYER2", "alphabeta"),
		Rows:            GetEnvAsPositiveInt("BOARD_ROWS", meta.ROWS),
		Columns:         GetEnvAsPositiveInt("BOARD_COLUMNS", meta.COLUMNS),
		SearchDepth:     GetEnvAsPositiveInt("SEARCH_DEPTH", meta.SEARCH_DEPTH),
		RandomSeed:      GetEnvAsUint64("RANDOM_SEED", 0),
		LogLevel:        GetEnv("LOG_LEVEL", "info"),
		ExperimentGames: GetEnvAsPositiveInt("EXPERIMENT_GAMES", meta.EXPERIMENT_GAMES),
		ExperimentDir:   GetEnv("EXPERIMENT_DIR", meta.EXPERIMENT_DIR),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Msgf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsPositiveInt(key string, defaultValue int) int {
	value := GetEnvAsInt(key, defaultValue)
	if value <= 0 {
		log.Warn().Msgf("Non-positive value for %s: %d, using default: %d", key, value, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsUint64(key string, defaultValue uint64) uint64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Warn().Msgf("Invalid unsigned value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
