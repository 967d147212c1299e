package cli

import (
	"fmt"
	"iter"
	"math/big"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/combinat/combinatorics"
)

// combinationsCommand creates the "combinations" command.
func (c *CLI) combinationsCommand() *cobra.Command {
	var (
		ks    []int
		all   bool
		multi bool
		eager bool
	)

	cmd := &cobra.Command{
		Use:   "combinations <items...>",
		Short: "List the k-combinations of the items",
		Long: `List the combinations of the items for every requested size.

Lazy mode (the default) orders by size, then lexicographically by position.
--eager builds the whole list first, in lexicographic preorder, so different
sizes interleave.`,
		Example: `  combgen combinations a b c d --k 2
  combgen --flavor text combinations abc --k 1 --k 3 --eager
  combgen combinations x y --k 3 --multi`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			coll, err := c.collection(args)
			if err != nil {
				return err
			}
			var sizes combinatorics.Sizes
			switch {
			case all:
				sizes = combinatorics.AllSizes()
			case len(ks) == 1:
				sizes = combinatorics.K(ks[0])
			case len(ks) > 1:
				sizes = combinatorics.Ks(ks...)
			default:
				return fmt.Errorf("%w: pass --k or --all", combinatorics.ErrInvalidArgument)
			}
			logger.Debug("combinations", "n", coll.Len(), "sizes", sizes, "multi", multi, "eager", eager)

			prog := newProgress(logger)
			var n int
			if eager {
				out, err := combinatorics.KCombinations(coll, sizes, multi)
				if err != nil {
					return err
				}
				n, err = emit(ctx, cmd.OutOrStdout(), c.config, slices.Values(out))
				if err != nil {
					return err
				}
			} else {
				var opts []combinatorics.Option
				if multi {
					opts = append(opts, combinatorics.WithRepetition())
				}
				seq, err := combinatorics.Combinations(coll, sizes, opts...)
				if err != nil {
					return err
				}
				n, err = emit(ctx, cmd.OutOrStdout(), c.config, seq)
				if err != nil {
					return err
				}
			}
			prog.done(fmt.Sprintf("emitted %d combinations", n))
			return nil
		},
	}

	cmd.Flags().IntSliceVar(&ks, "k", nil, "combination size (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "every size from 0 to n")
	cmd.Flags().BoolVar(&multi, "multi", false, "allow repeated elements (multicombinations)")
	cmd.Flags().BoolVar(&eager, "eager", false, "build the full list in lexicographic preorder")
	cmd.MarkFlagsMutuallyExclusive("k", "all")

	return cmd
}

// permutationsCommand creates the "permutations" command.
func (c *CLI) permutationsCommand() *cobra.Command {
	var (
		unique bool
		nth    string
	)

	cmd := &cobra.Command{
		Use:   "permutations <items...>",
		Short: "List the permutations of the items",
		Long: `List every arrangement of the items.

By default arrangements follow Heap's algorithm, one swap apart.
--unique lists each distinct arrangement once in lexicographic order,
which is what a multiset needs. --nth prints only the arrangement at that
0-based lexicographic index.`,
		Example: `  combgen --flavor text permutations abc
  combgen --flavor text permutations aab --unique
  combgen --flavor text permutations 0123456789 --nth 999999`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			coll, err := c.collection(args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("nth") {
				index, ok := new(big.Int).SetString(nth, 10)
				if !ok {
					return fmt.Errorf("%w: index %q is not an integer", combinatorics.ErrInvalidArgument, nth)
				}
				p, err := combinatorics.NthPermutation(coll, index)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), p.String()+c.config.Separator)
				return err
			}

			logger.Debug("permutations", "n", coll.Len(), "unique", unique)
			prog := newProgress(logger)
			var seq iter.Seq[combinatorics.Collection[string]]
			if unique {
				seq, err = combinatorics.UniquePermutations(coll)
			} else {
				seq, err = combinatorics.Permutations(coll)
			}
			if err != nil {
				return err
			}
			n, err := emit(ctx, cmd.OutOrStdout(), c.config, seq)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("emitted %d permutations", n))
			return nil
		},
	}

	cmd.Flags().BoolVar(&unique, "unique", false, "distinct arrangements in lexicographic order")
	cmd.Flags().StringVar(&nth, "nth", "", "print only the arrangement at this 0-based lexicographic index")
	cmd.MarkFlagsMutuallyExclusive("unique", "nth")

	return cmd
}

// partitionsCommand creates the "partitions" command.
func (c *CLI) partitionsCommand() *cobra.Command {
	var blocks int

	cmd := &cobra.Command{
		Use:   "partitions <items...>",
		Short: "List the set partitions of the items",
		Example: `  combgen --flavor set partitions 1 2 3
  combgen --flavor text partitions abcd --blocks 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			coll, err := c.collection(args)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("blocks") {
				blocks = combinatorics.AnyBlocks
			} else if blocks < 0 {
				return fmt.Errorf("%w: negative block count %d", combinatorics.ErrInvalidArgument, blocks)
			}
			logger.Debug("partitions", "n", coll.Len(), "blocks", blocks)

			prog := newProgress(logger)
			seq, err := combinatorics.SetPartitionsWith(c.growth, coll, blocks)
			if err != nil {
				return err
			}
			n, err := emit(ctx, cmd.OutOrStdout(), c.config, seq)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("emitted %d partitions", n))
			return nil
		},
	}

	cmd.Flags().IntVar(&blocks, "blocks", 0, "exact number of blocks")

	return cmd
}

// sumsCommand creates the "sums" command.
func (c *CLI) sumsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "sums <n>",
		Short:   "List the integer partitions of n, largest part first",
		Example: `  combgen sums 5`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			seq, err := combinatorics.IntegerPartitions(n)
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(ctx))
			count, err := emit(ctx, cmd.OutOrStdout(), c.config, mapSeq(seq, func(p []int) sum { return sum(p) }))
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("emitted %d integer partitions", count))
			return nil
		},
	}
}

// productCommand creates the "product" command.
func (c *CLI) productCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "product <group> [group...]",
		Short: "List the cartesian product of comma-separated groups",
		Long: `List every tuple taking one element from each group, last group fastest.

Each argument is one group; its elements are separated by commas, or are its
characters under --flavor text.`,
		Example: `  combgen product a,b x,y,z
  combgen --flavor text product ab xyz`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flavor, err := combinatorics.ParseFlavor(c.config.Flavor)
			if err != nil {
				return err
			}
			groups := make([]combinatorics.Collection[string], len(args))
			for i, arg := range args {
				items := []string{arg}
				if flavor != combinatorics.Text {
					items = strings.Split(arg, ",")
				}
				g, err := c.collection(items)
				if err != nil {
					return err
				}
				groups[i] = g
			}

			prog := newProgress(loggerFromContext(ctx))
			seq := mapSeq(combinatorics.Product(groups...), func(t []string) tuple { return tuple(t) })
			n, err := emit(ctx, cmd.OutOrStdout(), c.config, seq)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("emitted %d tuples", n))
			return nil
		},
	}
}
