// Package cli implements the combgen command-line interface.
//
// combgen is a thin front-end over the combinatorics engine: it turns its
// arguments into a collection, runs one generator or counter, and prints one
// object per line. The CLI is built using cobra and logs through
// charmbracelet/log.
//
// # Commands
//
//   - combinations: k-combinations and multicombinations, eager or lazy
//   - permutations: Heap's order, distinct lexicographic, or the n-th one
//   - partitions: set partitions, optionally with a fixed block count
//   - sums: integer partitions of n
//   - product: cartesian product of comma-separated groups
//   - count: closed-form counts (partitions, choose, sets)
//
// # Configuration
//
// Defaults come from combgen.toml in the working directory, or from the file
// named by --config. Flags given on the command line win over the file.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/combinat/combinatorics"
)

const (
	// appName is the binary name used in usage text.
	appName = "combgen"

	// defaultConfigFile is read when --config is not given and the file exists.
	defaultConfigFile = "combgen.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	config     Config
	configPath string
	growth     *combinatorics.GrowthCache
}

// New creates a CLI logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: DefaultConfig(),
		growth: combinatorics.NewGrowthCache(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "combgen enumerates and counts combinatorial objects",
		Long:         `combgen lists combinations, permutations, set partitions and integer partitions of its arguments, and computes their counts without enumerating them.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(cmd); err != nil {
				return err
			}
			if c.config.Verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			c.Logger.Debug("config", "flavor", c.config.Flavor, "limit", c.config.Limit, "separator", c.config.Separator)

			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "path to a TOML config file (default ./"+defaultConfigFile+" if present)")
	flags.String("flavor", c.config.Flavor, "how arguments are read: sequence, set or text")
	flags.Int("limit", c.config.Limit, "stop after this many objects (0 = no limit)")
	flags.String("separator", c.config.Separator, "text written after each object")
	flags.BoolP("verbose", "v", c.config.Verbose, "enable verbose logging")

	root.AddCommand(c.combinationsCommand())
	root.AddCommand(c.permutationsCommand())
	root.AddCommand(c.partitionsCommand())
	root.AddCommand(c.sumsCommand())
	root.AddCommand(c.productCommand())
	root.AddCommand(c.countCommand())

	return root
}
