package combinatorics

import "errors"

// Sentinel errors returned by the combinatorics engine.
var (
	// ErrInvalidInput indicates the collection is not one of the supported
	// flavors (zero-value collection, unknown Flavor, or Text over non-strings).
	ErrInvalidInput = errors.New("combinatorics: unsupported collection")

	// ErrInvalidArgument indicates a size or count parameter is missing,
	// negative, or outside its allowed range.
	ErrInvalidArgument = errors.New("combinatorics: invalid argument")

	// ErrNegativeLength indicates a growth-string length below zero.
	ErrNegativeLength = errors.New("combinatorics: negative length")

	// ErrConflictingRestrictions indicates an integer partition count was
	// asked for an exact number of parts and a restricted part set at once.
	ErrConflictingRestrictions = errors.New("combinatorics: exact part count and part set cannot be combined")
)

// Options configures the lazy combination generator.
//
//   - Repetition: emit multicombinations (an element may repeat, so k may exceed n).
type Options struct {
	Repetition bool
}

// Option mutates Options.
type Option func(*Options)

// WithRepetition enables multicombinations.
func WithRepetition() Option {
	return func(o *Options) {
		o.Repetition = true
	}
}

// DefaultOptions returns plain combinations without repetition.
func DefaultOptions() Options {
	return Options{Repetition: false}
}
