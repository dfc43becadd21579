package memory

import "errors"

// Sentinel errors identifying the failure kinds a Memory operation can
// report. Wrap these with fmt.Errorf("...: %w", Err...) for context.
var (
	// ErrOutOfBounds names an address or range outside the active
	// bounds. No function of this package returns it: Write and the
	// other mutating operations clip to the bounds, and Poke ignores an
	// address outside them.
	ErrOutOfBounds = errors.New("memory: address or range out of bounds")

	// ErrNotFound is returned when Index/RIndex cannot locate a
	// pattern, or a lookup requires content that isn't there.
	ErrNotFound = errors.New("memory: not found")

	// ErrDataGap names an empty cell met by a read that needs
	// contiguous content. No function of this package returns it: Hex
	// reports ErrContiguityRequired instead.
	ErrDataGap = errors.New("memory: data gap encountered")

	// ErrValueRange names a byte value outside 0..=255 (not
	// representable in Go) or a negative size or step below 1. No
	// function of this package returns it: Extract and Chop treat a
	// step below 1 as 1, and Reserve ignores a size of zero or less.
	ErrValueRange = errors.New("memory: value or size out of range")

	// ErrInvariantBroken is returned by Validate when I1-I3 or the
	// bounds invariant does not hold.
	ErrInvariantBroken = errors.New("memory: block invariant violated")

	// ErrContiguityRequired is returned by an operation needing a
	// single populated block (e.g. Hex) when the content is split
	// across blocks or has gaps.
	ErrContiguityRequired = errors.New("memory: contiguous content required")
)
