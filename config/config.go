package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/thanh2004nguyen/cosmetics-automation/registry"
)

const (
	DefaultCredentials = "credentials.json"
	DefaultExportFile  = "cosmetics.xlsx"
)

// Config is the resolved runtime configuration, passed explicitly into
// commands rather than read from ambient state.
type Config struct {
	SpreadsheetID string
	Credentials   string
	APIURL        string
	PageSize      int
}

// Load resolves configuration from the environment, with a local .env file
// (if any) loaded first. Command line flags override the returned values.
func Load() Config {
	godotenv.Load()

	return Config{
		SpreadsheetID: os.Getenv("SPREADSHEET_ID"),
		Credentials:   getenv("CREDENTIALS_FILE", DefaultCredentials),
		APIURL:        getenv("API_URL", registry.DefaultURL),
		PageSize:      getint("PAGE_SIZE", registry.DefaultPageSize),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}

	return fallback
}
