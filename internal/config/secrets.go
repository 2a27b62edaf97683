package config

import (
	"os"

	"capindex/internal/logger"

	"github.com/joho/godotenv"
)

type Secrets struct {
	EodhdApiToken string
	JwtSecret     string
}

// LoadSecrets reads secrets from the environment, after loading the .env
// file matching CAPINDEX_ENV when one exists. Missing values are left empty
// so MOEX-only setups run without an EODHD account.
func LoadSecrets() (*Secrets, error) {
	envFile := ".env"
	if os.Getenv("CAPINDEX_ENV") == "dev" {
		envFile = ".env.dev"
	} else if os.Getenv("CAPINDEX_ENV") == "test" {
		envFile = ".env.test"
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Debug("no %s file found - reading secrets from the environment", envFile)
	}

	return &Secrets{
		EodhdApiToken: os.Getenv("EODHD_API_TOKEN"),
		JwtSecret:     os.Getenv("CAPINDEX_JWT_SECRET"),
	}, nil
}
