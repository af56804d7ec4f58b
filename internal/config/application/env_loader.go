package application

import (
	"os"

	"github.com/joho/godotenv"

	"sysvitals/internal/infrastructure/logger"
)

// LoadEnvFile loads environment variables from a .env file.
// If envFile is empty, SYSVITALS_ENV_FILE is used, then .env in the current directory.
// Variables already set in the environment are not overridden.
// Returns true if a file was loaded, false otherwise
func LoadEnvFile(logger *logger.Logger, envFile string) bool {
	if envFile == "" {
		envFile = getValue("SYSVITALS_ENV_FILE", ".env")
	}

	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		logger.Debug("No .env file found", "path", envFile)
		return false
	}

	err := godotenv.Load(envFile)
	if err != nil {
		logger.Warn("Failed to load .env file", "path", envFile, "err", err)
		return false
	}

	logger.Debug("Loaded .env file", "path", envFile)
	return true
}
