package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Mail     MailConfig
	Sheets   SheetsConfig
	Gemini   GeminiConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	URL  string // postgres DSN, takes precedence when set
	Path string // sqlite file used otherwise
}

type MailConfig struct {
	APIKey     string
	AdminEmail string
}

type SheetsConfig struct {
	SpreadsheetID string
	Credentials   string // service account credentials as a JSON blob
}

type GeminiConfig struct {
	APIKey string
}

func Load() *Config {
	godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3001"),
		},
		Database: DatabaseConfig{
			URL:  getEnv("DATABASE_URL", ""),
			Path: getEnv("DB_PATH", "dazu.db"),
		},
		Mail: MailConfig{
			APIKey:     getEnv("RESEND_API_KEY", ""),
			AdminEmail: getEnv("ADMIN_EMAIL", "dazuai01@gmail.com"),
		},
		Sheets: SheetsConfig{
			SpreadsheetID: getEnv("SPREADSHEET_ID", ""),
			Credentials:   getEnv("GOOGLE_SHEETS_CREDENTIALS", ""),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
