package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every variable, e.g. HEXCRUSADE_ADDRESS.
const EnvPrefix = "HEXCRUSADE"

// LoadedConfig is the server configuration.
type LoadedConfig struct {
	ServerAddress string `envconfig:"ADDRESS" default:":8080"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding   string `envconfig:"LOG_ENCODING" default:"json"`
	// DBPath is the sqlite file of the match ledger. Empty disables it.
	DBPath string `envconfig:"DB_PATH" default:"./data/hexcrusade.db"`
	// RandomSeed fixes the dice; 0 seeds from the clock.
	RandomSeed    int64         `envconfig:"RANDOM_SEED" default:"0"`
	IdleTTL       time.Duration `envconfig:"IDLE_TTL" default:"2h"`
	SweepSchedule string        `envconfig:"SWEEP_SCHEDULE" default:"@every 5m"`
}

// LoadConfig reads envFiles (missing files are skipped) and then the
// environment.
func LoadConfig(envFiles ...string) (*LoadedConfig, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read env file %s: %w", f, err)
		}
	}
	var cfg LoadedConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c *LoadedConfig) Validate() error {
	var errs []error
	if strings.TrimSpace(c.ServerAddress) == "" {
		errs = append(errs, errors.New("server address is empty"))
	}
	if c.IdleTTL <= 0 {
		errs = append(errs, fmt.Errorf("idle ttl must be positive, got %s", c.IdleTTL))
	}
	if strings.TrimSpace(c.SweepSchedule) == "" {
		errs = append(errs, errors.New("sweep schedule is empty"))
	}
	return errors.Join(errs...)
}
