// Package memory implements a sparse, byte-addressable virtual memory:
// an editable, random-access store of bytes over an address space that
// is effectively unbounded, whose populated regions form a sorted
// collection of non-overlapping, non-adjacent blocks. Gaps between
// blocks are a first-class absent state, never a zero byte.
//
// A Memory behaves simultaneously as an ordered sequence over
// [Start, Endex) - where empty positions contribute an absent value -
// and as a mapping from Address to byte over populated addresses only.
// Optional bounds clamp the range mutating operations may touch; Write,
// Insert, Delete, Clear, Shift, Poke and Flood each have a matching
// Backup constructor, undone by Restore (Crop, Cut, Fill, Reserve,
// Append and Extend have no constructor of their own); Views hand out
// read-only windows without copying.
package memory
