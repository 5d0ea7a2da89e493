package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	// Other
	AllowedOrigins []string
	AppURL         string

	// Search result caps
	SearchResultLimit int // default per-category result limit
	MatchDetailLimit  int // max match explanations kept per result

	// Suggestion engine caps
	SuggestionLimit       int // overall suggestions returned per request
	SuggestionSectionCap  int // items kept per suggestion section
	CorrectionMaxDistance int // edit distance threshold for typo corrections
	RecentSearchRetention int // recent queries kept in the history store
	SurfacedHistoryCount  int // recent/popular entries echoed in responses
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:            getEnv("SERVER_PORT", "8080"),
		DBPath:                getEnv("DB_PATH", "db/app.db"),
		Environment:           getEnv("ENVIRONMENT", "development"),
		AllowedOrigins:        strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		AppURL:                getEnv("APP_URL", "http://localhost:8080"),
		SearchResultLimit:     getEnvInt("SEARCH_RESULT_LIMIT", 10),
		MatchDetailLimit:      getEnvInt("MATCH_DETAIL_LIMIT", 6),
		SuggestionLimit:       getEnvInt("SUGGESTION_LIMIT", 10),
		SuggestionSectionCap:  getEnvInt("SUGGESTION_SECTION_CAP", 4),
		CorrectionMaxDistance: getEnvInt("CORRECTION_MAX_DISTANCE", 2),
		RecentSearchRetention: getEnvInt("RECENT_SEARCH_RETENTION", 50),
		SurfacedHistoryCount:  getEnvInt("SURFACED_HISTORY_COUNT", 5),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("[WARNING] Invalid value for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
