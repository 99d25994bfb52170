package game

import (
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/lamplight/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible feature placement.
	// A seed of 0 means a random seed will be generated.
	Seed int64
	// Width and Height are the map dimensions in tiles.
	Width, Height int
	// Ambient lights the whole map.
	Ambient bool
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		Width:  world.DefaultWidth,
		Height: world.DefaultHeight,
	}
}

// LoadConfig reads LAMPLIGHT_SEED, LAMPLIGHT_AMBIENT, LAMPLIGHT_WIDTH and
// LAMPLIGHT_HEIGHT, falling back to DefaultConfig for unset variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("LAMPLIGHT_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("LAMPLIGHT_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv("LAMPLIGHT_AMBIENT"); v != "" {
		ambient, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("LAMPLIGHT_AMBIENT: %w", err)
		}
		cfg.Ambient = ambient
	}

	for _, dim := range []struct {
		name string
		dst  *int
	}{
		{"LAMPLIGHT_WIDTH", &cfg.Width},
		{"LAMPLIGHT_HEIGHT", &cfg.Height},
	} {
		v := os.Getenv(dim.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", dim.name, err)
		}
		if n <= 0 {
			return cfg, fmt.Errorf("%s: must be positive, got %d", dim.name, n)
		}
		*dim.dst = n
	}

	return cfg, nil
}
