package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the layout settings read from a TOML file. Flags override
// anything set here.
type Config struct {
	// NodeRankFactor controls which empty ranks survive compaction: an
	// empty rank keeps its slot when its relative index is a multiple of
	// this factor.
	NodeRankFactor int `toml:"node_rank_factor"`

	// DisableOrderingHeuristic keeps the traversal-seeded order instead of
	// running the crossing-minimization iterations.
	DisableOrderingHeuristic bool `toml:"disable_ordering_heuristic"`
}

// defaultConfig returns the settings used when no config file is given.
func defaultConfig() Config {
	return Config{NodeRankFactor: 1}
}

// loadConfig reads a TOML config file on top of the defaults. Unknown keys
// are rejected so typos surface instead of silently reverting to defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("parse config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}
