package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/combinat/combinatorics"
)

// Config holds the defaults a combgen.toml file may set.
//
//	flavor    = "text"
//	limit     = 100
//	separator = "\n"
//	verbose   = false
type Config struct {
	Flavor    string `toml:"flavor"`
	Limit     int    `toml:"limit"`
	Separator string `toml:"separator"`
	Verbose   bool   `toml:"verbose"`
}

// DefaultConfig returns the built-in defaults: sequence flavor, no limit,
// one object per line.
func DefaultConfig() Config {
	return Config{
		Flavor:    combinatorics.Sequence.String(),
		Separator: "\n",
	}
}

// LoadConfig decodes the TOML file at path over DefaultConfig. Unknown keys,
// an unknown flavor and a negative limit are errors.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return cfg, cfg.validate()
}

func (cfg Config) validate() error {
	if _, err := combinatorics.ParseFlavor(cfg.Flavor); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if cfg.Limit < 0 {
		return fmt.Errorf("config: negative limit %d", cfg.Limit)
	}
	return nil
}

// loadConfig resolves the effective configuration for cmd: defaults, then
// the config file, then any flag set on the command line.
func (c *CLI) loadConfig(cmd *cobra.Command) error {
	cfg := DefaultConfig()
	switch {
	case c.configPath != "":
		loaded, err := LoadConfig(c.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	default:
		loaded, err := LoadConfig(defaultConfigFile)
		switch {
		case err == nil:
			cfg = loaded
		case !errors.Is(err, fs.ErrNotExist):
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("flavor") {
		cfg.Flavor, _ = flags.GetString("flavor")
	}
	if flags.Changed("limit") {
		cfg.Limit, _ = flags.GetInt("limit")
	}
	if flags.Changed("separator") {
		cfg.Separator, _ = flags.GetString("separator")
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	c.config = cfg
	return nil
}
