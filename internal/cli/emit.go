package cli

import (
	"context"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/katalvlaran/combinat/combinatorics"
)

// collection builds the alphabet the generators work on from command
// arguments. Text flavor joins the arguments and takes one element per
// character; the other flavors take one element per argument.
func (c *CLI) collection(args []string) (combinatorics.Collection[string], error) {
	flavor, err := combinatorics.ParseFlavor(c.config.Flavor)
	if err != nil {
		return combinatorics.Collection[string]{}, err
	}
	if flavor == combinatorics.Text {
		return combinatorics.NewText(strings.Join(args, "")), nil
	}
	return combinatorics.Materialize(flavor, args)
}

// emit writes every object of seq to w, each followed by the configured
// separator, until seq ends, the limit is reached or ctx is cancelled.
// It returns the number of objects written.
func emit[S fmt.Stringer](ctx context.Context, w io.Writer, cfg Config, seq iter.Seq[S]) (int, error) {
	n := 0
	for obj := range seq {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		if _, err := io.WriteString(w, obj.String()+cfg.Separator); err != nil {
			return n, err
		}
		n++
		if n == cfg.Limit {
			return n, nil
		}
	}
	return n, nil
}

// tuple renders a product tuple the way a Sequence renders.
type tuple []string

func (t tuple) String() string {
	return "[" + strings.Join(t, " ") + "]"
}

// sum renders an integer partition as "3+1+1".
type sum []int

func (s sum) String() string {
	if len(s) == 0 {
		return "0"
	}
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, "+")
}

// mapSeq adapts seq element by element.
func mapSeq[A, B any](seq iter.Seq[A], f func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for a := range seq {
			if !yield(f(a)) {
				return
			}
		}
	}
}
