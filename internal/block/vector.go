package block

import (
	"golang.org/x/exp/slices"
)

// Vector is a sorted, non-overlapping, non-adjacent collection of
// Blocks. The zero value is an empty Vector ready to use.
type Vector struct {
	blocks []Block
}

// Len returns the number of blocks in the vector.
func (v *Vector) Len() int {
	return len(v.blocks)
}

// At returns the block at the given index.
func (v *Vector) At(index int) *Block {
	return &v.blocks[index]
}

// Blocks returns the underlying block slice. Callers must not mutate
// the slice's length or element addresses directly; use the Vector's
// maintenance methods instead.
func (v *Vector) Blocks() []Block {
	return v.blocks
}

// Span returns the lowest start address and highest endex address
// spanned by the vector's blocks, and ok=false if the vector is empty.
func (v *Vector) Span() (start, endex Address, ok bool) {
	if len(v.blocks) == 0 {
		return 0, 0, false
	}
	return v.blocks[0].Start, v.blocks[len(v.blocks)-1].Endex(), true
}

// IndexAt returns the index of the block containing address, and
// whether one was found.
func (v *Vector) IndexAt(address Address) (int, bool) {
	i := v.IndexStart(address)
	if i < len(v.blocks) && v.blocks[i].Contains(address) {
		return i, true
	}
	if i > 0 && v.blocks[i-1].Contains(address) {
		return i - 1, true
	}
	return -1, false
}

// IndexStart returns the index of the first block whose Start is >=
// address. It is the insertion point for a new block starting exactly
// at address.
func (v *Vector) IndexStart(address Address) int {
	i, _ := slices.BinarySearchFunc(v.blocks, address, func(b Block, a Address) int {
		switch {
		case b.Start < a:
			return -1
		case b.Start > a:
			return 1
		default:
			return 0
		}
	})
	return i
}

// IndexEndex returns the index of the first block whose Endex is >
// address. Every block at a lower index ends at or before address.
func (v *Vector) IndexEndex(address Address) int {
	i, _ := slices.BinarySearchFunc(v.blocks, address, func(b Block, a Address) int {
		endex := b.Endex()
		switch {
		case endex <= a:
			return -1
		case b.Start > a:
			return 1
		default:
			return 0
		}
	})
	return i
}

// ClearAll removes the vector's content, keeping its capacity.
func (v *Vector) ClearAll() {
	v.blocks = v.blocks[:0]
}

// Reset discards the vector's storage entirely.
func (v *Vector) Reset() {
	v.blocks = nil
}

// insertAt splices a block into the slice at index i, growing it by one.
func (v *Vector) insertAt(i int, b Block) {
	v.blocks = slices.Insert(v.blocks, i, b)
}

// removeAt deletes the block at index i.
func (v *Vector) removeAt(i int) {
	v.blocks = slices.Delete(v.blocks, i, i+1)
}

// removeRange deletes blocks in [lo, hi).
func (v *Vector) removeRange(lo, hi int) {
	v.blocks = slices.Delete(v.blocks, lo, hi)
}

// Clear removes any block content lying in [start, endex),
// trimming or splitting the blocks at the edges as needed.
func (v *Vector) Clear(start, endex Address) {
	if endex <= start {
		return
	}
	i := v.IndexEndex(start)
	for i < len(v.blocks) && v.blocks[i].Start < endex {
		blk := &v.blocks[i]
		blkStart, blkEndex := blk.Start, blk.Endex()

		switch {
		case blkStart >= start && blkEndex <= endex:
			// Fully contained: drop it and re-examine index i, which
			// now holds the next block.
			v.removeAt(i)

		case blkStart < start && blkEndex > endex:
			// The span carves a hole out of the block's middle.
			tailData := make([]byte, blkEndex-endex)
			copy(tailData, blk.Data[endex-blkStart:])
			blk.Data = blk.Data[:start-blkStart]
			v.insertAt(i+1, Block{Start: endex, Data: tailData})
			return

		case blkStart < start:
			// Overlaps only the block's tail.
			blk.Data = blk.Data[:start-blkStart]
			i++

		default:
			// Overlaps only the block's head (blkEndex > endex).
			blk.Data = blk.Data[endex-blkStart:]
			blk.Start = endex
			i++
		}
	}
}

// Write overwrites [start, start+len(data)) with data, creating,
// extending, splitting, or merging blocks as needed. No bound checks
// are performed; callers apply bounds clipping before calling Write.
func (v *Vector) Write(start Address, data []byte) {
	if len(data) == 0 {
		return
	}
	endex := start + Address(len(data))
	v.Clear(start, endex)

	i := v.IndexStart(start)
	merged := Block{Start: start, Data: append([]byte(nil), data...)}

	// Merge with the preceding block if adjacent.
	if i > 0 && v.blocks[i-1].Endex() == start {
		i--
		prev := &v.blocks[i]
		prev.Data = append(prev.Data, merged.Data...)
		merged = *prev
		v.removeAt(i)
	}

	// Merge with the following block if adjacent.
	if i < len(v.blocks) && v.blocks[i].Start == endex {
		next := &v.blocks[i]
		merged.Data = append(merged.Data, next.Data...)
		v.removeAt(i)
	}

	v.insertAt(i, merged)
}

// Insert shifts every block at or after start up by len(data), then
// writes data at start. Existing content is never overwritten, only
// displaced.
func (v *Vector) Insert(start Address, data []byte) {
	if len(data) == 0 {
		return
	}
	shift := Address(len(data))
	i := v.IndexEndex(start)

	if i < len(v.blocks) && v.blocks[i].Start < start {
		// start falls strictly inside blocks[i]; split it so the tail
		// moves with everything else at or after start.
		blk := &v.blocks[i]
		tailData := make([]byte, blk.Endex()-start)
		copy(tailData, blk.Data[start-blk.Start:])
		blk.Data = blk.Data[:start-blk.Start]
		v.insertAt(i+1, Block{Start: start, Data: tailData})
		i++
	}

	for j := i; j < len(v.blocks); j++ {
		v.blocks[j].Start += shift
	}

	v.Write(start, data)
}

// Delete removes [start, start+size) and shifts every block after the
// removed span down by size.
func (v *Vector) Delete(start Address, size int64) {
	if size <= 0 {
		return
	}
	endex := start + size
	v.Clear(start, endex)

	i := v.IndexStart(endex)
	for j := i; j < len(v.blocks); j++ {
		v.blocks[j].Start -= size
	}
	v.tryMergeAt(v.IndexStart(start))
}

// tryMergeAt merges the block at index i into the preceding block if
// the two are now adjacent, after a shift may have closed a gap.
func (v *Vector) tryMergeAt(i int) {
	if i > 0 && i <= len(v.blocks) && i-1 < len(v.blocks) {
		if i < len(v.blocks) && v.blocks[i-1].Endex() == v.blocks[i].Start {
			v.blocks[i-1].Data = append(v.blocks[i-1].Data, v.blocks[i].Data...)
			v.removeAt(i)
		}
	}
}

// ShiftAll translates every block's Start by delta, with no bound
// checks or clipping.
func (v *Vector) ShiftAll(delta Address) {
	for i := range v.blocks {
		v.blocks[i].Start += delta
	}
}
