package config

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
// Slack and Turso settings are optional; everything else has a sensible
// default.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get an env var with a default.
	getEnv := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	cfg := Config{
		StatsCSV:        getEnv("STATS_CSV", "tackles_joined.csv"),
		Season:          getEnv("SEASON", "25/26"),
		League:          getEnv("LEAGUE", "Turkish Super Lig"),
		DomesticCountry: getEnv("DOMESTIC_COUNTRY", "Türkiye"),
		DBName:          getEnv("DB_NAME", "superlig.db"),
		MigrationsDir:   getEnv("MIGRATIONS_DIR", "./migrations"),
		Port:            getEnv("PORT", "8080"),
		Slack: SlackConfig{
			Token:     getEnv("SLACK_BOT_TOKEN", ""),
			ChannelID: getEnv("SLACK_CHANNEL_ID", ""),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnv("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnv("TURSO_AUTH_TOKEN", ""),
		},
	}
	return cfg
}
