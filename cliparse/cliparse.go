package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	AdminAPIKey  string
	VoterKeySalt string
}

// ParseFlags validates flags and fills in defaults from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("vibepoll", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.AdminAPIKey, "admin-key", "", "Admin API key (prefer env)")
	fs.StringVar(&cfg.VoterKeySalt, "voter-salt", "", "Voter key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}

	// Secrets - MUST be provided
	if cfg.AdminAPIKey == "" {
		cfg.AdminAPIKey = os.Getenv("ADMIN_API_KEY")
	}
	if cfg.AdminAPIKey == "" {
		return Config{}, errors.New("ADMIN_API_KEY required")
	}

	if cfg.VoterKeySalt == "" {
		cfg.VoterKeySalt = os.Getenv("VOTER_KEY_SALT")
	}
	if cfg.VoterKeySalt == "" {
		return Config{}, errors.New("VOTER_KEY_SALT required")
	}

	return cfg, nil
}
