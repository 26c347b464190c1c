package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	NumWorkers       int
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is fine; the docker compose setup injects real env vars.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:             "9446",
		NumWorkers:       4,
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
	}

	if envPort := os.Getenv("PORT"); len(envPort) != 0 {
		env.Port = envPort
	}

	if envNumWorkers := os.Getenv("NUM_WORKERS"); len(envNumWorkers) != 0 {
		numWorkers, err := strconv.Atoi(envNumWorkers)
		if err != nil {
			return nil, err
		}
		env.NumWorkers = numWorkers
	}

	if envPostgresAddress := os.Getenv("POSTGRES_ADDRESS"); len(envPostgresAddress) != 0 {
		env.PostgresAddress = envPostgresAddress
	}

	if envPostgresPort := os.Getenv("POSTGRES_PORT"); len(envPostgresPort) != 0 {
		env.PostgresPort = envPostgresPort
	}

	if envPostgresDB := os.Getenv("POSTGRES_DB"); len(envPostgresDB) != 0 {
		env.PostgresDB = envPostgresDB
	}

	if envPostgresUsername := os.Getenv("POSTGRES_USERNAME"); len(envPostgresUsername) != 0 {
		env.PostgresUsername = envPostgresUsername
	}

	if envPostgresPassword := os.Getenv("POSTGRES_PASSWORD"); len(envPostgresPassword) != 0 {
		env.PostgresPassword = envPostgresPassword
	}

	return &env, nil
}

// ConnectionString assembles the Postgres DSN used by the server and the
// migration runner.
func (c *Config) ConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
