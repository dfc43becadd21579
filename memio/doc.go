// Package memio adapts a memory.Memory to the standard io.Reader,
// io.Writer, and io.Seeker contracts, treating the sparse store as a
// seekable random-access byte stream. Gaps are materialised as a
// configurable fill byte, or reported as an error in strict mode.
package memio
