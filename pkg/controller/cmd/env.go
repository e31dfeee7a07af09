package cmd

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/m-mizutani/goerr/v2"
)

const (
	envFileEnv     = "RETAILPREP_ENV_FILE"
	defaultEnvFile = ".env"
)

// loadEnvFile exports variables of the env file before flags are parsed. Variables already set are not overridden.
func loadEnvFile() error {
	path, explicit := os.LookupEnv(envFileEnv)
	if !explicit || path == "" {
		path = defaultEnvFile
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil
		}
	}

	if err := godotenv.Load(path); err != nil {
		return goerr.Wrap(err, "failed to load env file", goerr.V("path", path))
	}
	return nil
}
