package cli

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/combinat/combinatorics"
	"github.com/katalvlaran/combinat/numtheory"
)

// countCommand creates the "count" command group.
func (c *CLI) countCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count combinatorial objects without listing them",
	}

	cmd.AddCommand(c.countPartitionsCommand())
	cmd.AddCommand(c.countChooseCommand())
	cmd.AddCommand(c.countSetsCommand())

	return cmd
}

// countPartitionsCommand creates the "count partitions" subcommand.
func (c *CLI) countPartitionsCommand() *cobra.Command {
	var (
		parts int
		from  []int
	)

	cmd := &cobra.Command{
		Use:   "partitions <n>",
		Short: "Count the integer partitions of n",
		Example: `  combgen count partitions 100
  combgen count partitions 10 --parts 3
  combgen count partitions 200 --from 1,2,5,10,20,50,100,200`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}

			var opts []combinatorics.PartitionOption
			if cmd.Flags().Changed("parts") {
				opts = append(opts, combinatorics.WithExactParts(parts))
			}
			if cmd.Flags().Changed("from") {
				opts = append(opts, combinatorics.WithParts(from...))
			}
			loggerFromContext(cmd.Context()).Debug("count partitions", "n", n, "restrictions", len(opts))

			total, err := combinatorics.IntegerPartitionCount(n, opts...)
			if err != nil {
				return err
			}
			return c.printCount(cmd, total)
		},
	}

	cmd.Flags().IntVar(&parts, "parts", 0, "count only partitions with exactly this many parts")
	cmd.Flags().IntSliceVar(&from, "from", nil, "count only partitions whose parts come from this list")

	return cmd
}

// countChooseCommand creates the "count choose" subcommand.
func (c *CLI) countChooseCommand() *cobra.Command {
	var multi bool

	cmd := &cobra.Command{
		Use:   "choose <n> <k>",
		Short: "Count the k-combinations of n elements",
		Example: `  combgen count choose 52 5
  combgen count choose 4 3 --multi`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			k, err := parseInt(args[1])
			if err != nil {
				return err
			}

			if multi {
				return c.printCount(cmd, combinatorics.NMultichooseK(n, k))
			}
			return c.printCount(cmd, combinatorics.NChooseK(n, k))
		},
	}

	cmd.Flags().BoolVar(&multi, "multi", false, "count multicombinations")

	return cmd
}

// countSetsCommand creates the "count sets" subcommand.
func (c *CLI) countSetsCommand() *cobra.Command {
	var blocks int

	cmd := &cobra.Command{
		Use:   "sets <n>",
		Short: "Count the set partitions of n elements (Bell or Stirling numbers)",
		Example: `  combgen count sets 10
  combgen count sets 10 --blocks 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			if n < 0 {
				return fmt.Errorf("%w: negative set size %d", combinatorics.ErrInvalidArgument, n)
			}

			if cmd.Flags().Changed("blocks") {
				if blocks < 0 {
					return fmt.Errorf("%w: negative block count %d", combinatorics.ErrInvalidArgument, blocks)
				}
				return c.printCount(cmd, numtheory.Stirling2(n, blocks))
			}
			return c.printCount(cmd, numtheory.Bell(n))
		},
	}

	cmd.Flags().IntVar(&blocks, "blocks", 0, "count only partitions into exactly this many blocks")

	return cmd
}

func (c *CLI) printCount(cmd *cobra.Command, v *big.Int) error {
	_, err := fmt.Fprint(cmd.OutOrStdout(), v.String()+c.config.Separator)
	return err
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", combinatorics.ErrInvalidArgument, s)
	}
	return n, nil
}
