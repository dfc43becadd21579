// Package block provides the low-level sorted run storage used by the
// memory package. It knows nothing about bounds, backups, or views;
// it only maintains the I1-I3 invariants of a block collection:
// blocks are kept in strictly increasing address order, no two blocks
// overlap, and no two blocks are adjacent (adjacent writes are always
// merged into one block).
package block
