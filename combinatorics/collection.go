package combinatorics

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Flavor tells the engine how to shape the objects it emits.
type Flavor int

const (
	invalidFlavor Flavor = iota

	// Sequence is an ordered list; duplicates by value are allowed.
	Sequence

	// Set keeps each value at most once, in insertion order.
	Set

	// Text is a string viewed as its characters.
	Text
)

// String returns the flavor name.
func (f Flavor) String() string {
	switch f {
	case Sequence:
		return "sequence"
	case Set:
		return "set"
	case Text:
		return "text"
	default:
		return fmt.Sprintf("Flavor(%d)", int(f))
	}
}

// ParseFlavor maps "sequence", "set" or "text" to its Flavor.
func ParseFlavor(s string) (Flavor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sequence", "seq", "":
		return Sequence, nil
	case "set":
		return Set, nil
	case "text", "string":
		return Text, nil
	default:
		return invalidFlavor, fmt.Errorf("%w: unknown flavor %q", ErrInvalidInput, s)
	}
}

// Collection is a finite ordered alphabet tagged with a Flavor.
// Generators never mutate a Collection; they copy its elements into a
// positional array and rebuild the flavor on each emission.
//
// The zero value is an invalid collection: every generator rejects it with
// ErrInvalidInput.
type Collection[T comparable] struct {
	flavor Flavor
	items  []T
}

// NewSequence returns a Sequence holding a copy of items.
func NewSequence[T comparable](items ...T) Collection[T] {
	return Collection[T]{flavor: Sequence, items: slices.Clone(items)}
}

// NewSet returns a Set holding the first occurrence of each value in items.
func NewSet[T comparable](items ...T) Collection[T] {
	return build(Set, items)
}

// NewText returns a Text collection with one element per rune of s.
func NewText(s string) Collection[string] {
	runes := []rune(s)
	items := make([]string, len(runes))
	for i, r := range runes {
		items[i] = string(r)
	}

	return Collection[string]{flavor: Text, items: items}
}

// Materialize wraps elements into the given flavor.
//
// A Set drops repeated values, so the result may be shorter than elements;
// callers materializing a multiset as a Set must expect that.
// Text requires T to be string. Any other flavor fails with ErrInvalidInput.
func Materialize[T comparable](flavor Flavor, elements []T) (Collection[T], error) {
	if err := checkFlavor[T](flavor); err != nil {
		return Collection[T]{}, err
	}

	return build(flavor, elements), nil
}

// Detect returns the flavor and the element count of c.
func Detect[T comparable](c Collection[T]) (Flavor, int, error) {
	if err := checkFlavor[T](c.flavor); err != nil {
		return invalidFlavor, 0, err
	}

	return c.flavor, len(c.items), nil
}

// checkFlavor validates a flavor for element type T.
func checkFlavor[T comparable](f Flavor) error {
	switch f {
	case Sequence, Set:
		return nil
	case Text:
		var zero T
		if _, ok := any(zero).(string); !ok {
			return fmt.Errorf("%w: text flavor over %T", ErrInvalidInput, zero)
		}

		return nil
	default:
		return fmt.Errorf("%w: %v", ErrInvalidInput, f)
	}
}

// build copies elements into a new collection of flavor f without validation.
func build[T comparable](f Flavor, elements []T) Collection[T] {
	c := Collection[T]{flavor: f, items: make([]T, 0, len(elements))}
	for _, e := range elements {
		c.Append(e)
	}

	return c
}

// empty returns a collection of flavor f with room for capacity elements.
func empty[T comparable](f Flavor, capacity int) Collection[T] {
	return Collection[T]{flavor: f, items: make([]T, 0, capacity)}
}

// Append extends c by one element in its flavor: a Set ignores values it
// already holds; Sequence and Text always grow.
func (c *Collection[T]) Append(v T) {
	if c.flavor == Set && slices.Contains(c.items, v) {
		return
	}
	c.items = append(c.items, v)
}

// Flavor returns the collection's flavor.
func (c Collection[T]) Flavor() Flavor { return c.flavor }

// Len returns the number of elements.
func (c Collection[T]) Len() int { return len(c.items) }

// At returns the i-th element in iteration order.
func (c Collection[T]) At(i int) T { return c.items[i] }

// Items returns a copy of the elements in iteration order.
func (c Collection[T]) Items() []T { return slices.Clone(c.items) }

// All iterates over the elements in order.
func (c Collection[T]) All() iter.Seq[T] {
	return slices.Values(c.items)
}

// Contains reports whether v is an element of c.
func (c Collection[T]) Contains(v T) bool {
	return slices.Contains(c.items, v)
}

// Equal reports whether c and other hold the same elements with the same
// flavor. Sets compare as sets; the other flavors compare positionally.
func (c Collection[T]) Equal(other Collection[T]) bool {
	if c.flavor != other.flavor || len(c.items) != len(other.items) {
		return false
	}
	if c.flavor != Set {
		return slices.Equal(c.items, other.items)
	}
	for _, v := range c.items {
		if !other.Contains(v) {
			return false
		}
	}

	return true
}

// String renders Text by concatenation, a Sequence as [a b c] and a Set as {a b c}.
func (c Collection[T]) String() string {
	var sb strings.Builder
	switch c.flavor {
	case Text:
		for _, v := range c.items {
			fmt.Fprint(&sb, v)
		}

		return sb.String()
	case Set:
		sb.WriteByte('{')
	default:
		sb.WriteByte('[')
	}
	for i, v := range c.items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v)
	}
	if c.flavor == Set {
		sb.WriteByte('}')
	} else {
		sb.WriteByte(']')
	}

	return sb.String()
}

// pick materializes the elements at the given positions.
func (c Collection[T]) pick(idx []int) Collection[T] {
	out := empty[T](c.flavor, len(idx))
	for _, i := range idx {
		out.Append(c.items[i])
	}

	return out
}
