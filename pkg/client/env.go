package client

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// EnvProjectID is the environment variable holding the Blockfrost project
// key.
const EnvProjectID = "BLOCKFROST_PROJECT_ID"

// LoadProjectID reads the project ID from the environment, loading a .env
// file from the working directory first when one exists. Failures here are
// local I/O errors, never API errors.
func LoadProjectID() (string, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("load .env file: %w", err)
	}

	projectID := os.Getenv(EnvProjectID)
	if projectID == "" {
		return "", fmt.Errorf("%s is not set", EnvProjectID)
	}
	return projectID, nil
}
