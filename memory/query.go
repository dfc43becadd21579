package memory

import "github.com/sparsemem/memory/internal/block"

// Peek returns the byte at a and true, or (0, false) if a is a gap.
func (m *Memory) Peek(a Address) (byte, bool) {
	i, ok := m.blocks.IndexAt(a)
	if !ok {
		return 0, false
	}
	b := m.blocks.At(i)
	return b.Data[a-b.Start], true
}

// GetOr returns the byte at a, or fallback if a is a gap. It mirrors
// the teacher's "sentinel instead of a bool" read shape.
func (m *Memory) GetOr(a Address, fallback byte) byte {
	if v, ok := m.Peek(a); ok {
		return v
	}
	return fallback
}

// Extract returns a new Memory holding the selected range. If pattern
// is non-nil, gaps within the range are flooded; if step > 1, only
// every step-th address is kept.
func (m *Memory) Extract(start, endex Address, pattern []byte, step int64, opts ...Option) *Memory {
	if step <= 0 {
		step = 1
	}
	out := New(opts...)
	for _, b := range m.blocks.Blocks() {
		bs, be := b.Start, b.Endex()
		if be <= start || bs >= endex {
			continue
		}
		lo := block.ClampLo(bs, start)
		hi := block.ClampHi(be, endex)
		out.blocks.Write(lo, b.Slice(lo, hi))
	}
	out.clipToBounds()
	if len(pattern) > 0 {
		out.Flood(start, endex, pattern)
	}
	if step > 1 {
		out.subsample(start, endex, step)
	}
	return out
}

// subsample keeps only every step-th address starting at start,
// deleting (without compaction at the vector level, but compacted into
// a dense sequence as the spec's extract with step requires) the rest.
func (m *Memory) subsample(start, endex Address, step int64) {
	var result Memory
	a := start
	for a < endex {
		if v, ok := m.Peek(a); ok {
			result.blocks.Write((a-start)/Address(step), []byte{v})
		}
		a += Address(step)
	}
	m.blocks = result.blocks
}

// Cut is Extract followed by Clear; the removed range is returned with
// bound applied via opts.
func (m *Memory) Cut(start, endex Address, opts ...Option) *Memory {
	out := m.Extract(start, endex, nil, 1, opts...)
	m.Clear(start, endex)
	return out
}

// ToBlocks returns a copy of every block overlapping [start, endex),
// clipped to that range.
func (m *Memory) ToBlocks(start, endex Address) []Block {
	var out []Block
	for _, b := range m.blocks.Blocks() {
		bs, be := b.Start, b.Endex()
		if be <= start || bs >= endex {
			continue
		}
		lo := block.ClampLo(bs, start)
		hi := block.ClampHi(be, endex)
		out = append(out, Block{Start: lo, Data: append([]byte(nil), b.Slice(lo, hi)...)})
	}
	return out
}

// ToBytes materialises [start, endex); gaps become pattern's bytes
// (cyclic) or 0x00 if pattern is empty.
func (m *Memory) ToBytes(start, endex Address, pattern []byte) []byte {
	if endex <= start {
		return nil
	}
	out := make([]byte, endex-start)
	for i := range out {
		a := start + Address(i)
		if v, ok := m.Peek(a); ok {
			out[i] = v
		} else if len(pattern) > 0 {
			out[i] = pattern[i%len(pattern)]
		}
	}
	return out
}

// Find returns the leftmost address where pattern matches contiguously
// within [start, endex), or fails with ErrNotFound.
func (m *Memory) Find(pattern []byte, start, endex Address) (Address, error) {
	a, ok := m.OFind(pattern, start, endex)
	if !ok {
		return 0, ErrNotFound
	}
	return a, nil
}

// RFind is Find scanning from the right.
func (m *Memory) RFind(pattern []byte, start, endex Address) (Address, error) {
	a, ok := m.ORFind(pattern, start, endex)
	if !ok {
		return 0, ErrNotFound
	}
	return a, nil
}

// Index and RIndex are the literal aliases of Find and RFind: this
// port's source material gives them identical failing-on-absence
// semantics, unlike the Python original where index/find diverge.
func (m *Memory) Index(pattern []byte, start, endex Address) (Address, error) {
	return m.Find(pattern, start, endex)
}

func (m *Memory) RIndex(pattern []byte, start, endex Address) (Address, error) {
	return m.RFind(pattern, start, endex)
}

// OFind returns the leftmost match address and true, or (0, false). A
// match can never straddle a gap, so the search never materialises
// more than one block's worth of bytes at a time regardless of how
// wide [start, endex) is.
func (m *Memory) OFind(pattern []byte, start, endex Address) (Address, bool) {
	if len(pattern) == 0 {
		return start, true
	}
	for _, b := range m.blocks.Blocks() {
		bs, be := b.Start, b.Endex()
		if be <= start || bs >= endex {
			continue
		}
		lo := block.ClampLo(bs, start)
		hi := block.ClampHi(be, endex)
		if i := indexBytes(b.Slice(lo, hi), pattern); i >= 0 {
			return lo + Address(i), true
		}
	}
	return 0, false
}

// ORFind is OFind scanning from the right.
func (m *Memory) ORFind(pattern []byte, start, endex Address) (Address, bool) {
	if len(pattern) == 0 {
		return endex, true
	}
	blocks := m.blocks.Blocks()
	for k := len(blocks) - 1; k >= 0; k-- {
		b := blocks[k]
		bs, be := b.Start, b.Endex()
		if be <= start || bs >= endex {
			continue
		}
		lo := block.ClampLo(bs, start)
		hi := block.ClampHi(be, endex)
		if i := lastIndexBytes(b.Slice(lo, hi), pattern); i >= 0 {
			return lo + Address(i), true
		}
	}
	return 0, false
}

func indexBytes(haystack, pattern []byte) int {
	for i := 0; i+len(pattern) <= len(haystack); i++ {
		if bytesEqual(haystack[i:i+len(pattern)], pattern) {
			return i
		}
	}
	return -1
}

func lastIndexBytes(haystack, pattern []byte) int {
	for i := len(haystack) - len(pattern); i >= 0; i-- {
		if bytesEqual(haystack[i:i+len(pattern)], pattern) {
			return i
		}
	}
	return -1
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (m *Memory) presenceMask(start, endex Address) []bool {
	if endex <= start {
		return nil
	}
	mask := make([]bool, endex-start)
	for _, b := range m.blocks.Blocks() {
		bs, be := b.Start, b.Endex()
		if be <= start || bs >= endex {
			continue
		}
		lo := block.ClampLo(bs, start)
		hi := block.ClampHi(be, endex)
		for a := lo; a < hi; a++ {
			mask[a-start] = true
		}
	}
	return mask
}

// Count returns the number of non-overlapping matches of pattern within
// [start, endex).
func (m *Memory) Count(pattern []byte, start, endex Address) int64 {
	if len(pattern) == 0 {
		return 0
	}
	var n int64
	a := start
	for {
		found, ok := m.OFind(pattern, a, endex)
		if !ok {
			break
		}
		n++
		a = found + Address(len(pattern))
	}
	return n
}

// EqualSpan returns the maximal run of equal bytes (or gap) surrounding
// a, and the shared value.
func (m *Memory) EqualSpan(a Address) (start, endex Address, value byte, present bool) {
	v, ok := m.Peek(a)
	if !ok {
		lo, hi := m.gapBoundsAt(a)
		return lo, hi, 0, false
	}
	lo := a
	for {
		if pv, o := m.Peek(lo - 1); o && pv == v {
			lo--
			continue
		}
		break
	}
	hi := a + 1
	for {
		if nv, o := m.Peek(hi); o && nv == v {
			hi++
			continue
		}
		break
	}
	return lo, hi, v, true
}

// BlockSpan is EqualSpan at block granularity: the containing block's
// span, or the containing gap.
func (m *Memory) BlockSpan(a Address) (start, endex Address, present bool) {
	i, ok := m.blocks.IndexAt(a)
	if ok {
		b := m.blocks.At(i)
		return b.Start, b.Endex(), true
	}
	lo, hi := m.gapBoundsAt(a)
	return lo, hi, false
}

// gapBoundsAt returns the bounds of the gap surrounding address a,
// using the neighboring blocks (or the active bounds, or the address
// space limits) as the edges. It never scans byte-by-byte.
func (m *Memory) gapBoundsAt(a Address) (lo, hi Address) {
	lo, hi = minAddress, maxAddress
	if m.boundStart != nil {
		lo = *m.boundStart
	}
	if m.boundEndex != nil {
		hi = *m.boundEndex
	}
	i := m.blocks.IndexEndex(a)
	if i > 0 {
		if prevEndex := m.blocks.At(i - 1).Endex(); prevEndex > lo {
			lo = prevEndex
		}
	}
	if i < m.blocks.Len() {
		if nextStart := m.blocks.At(i).Start; nextStart < hi {
			hi = nextStart
		}
	}
	return lo, hi
}

// Tile is one (address, data) unit yielded by Chop.
type Tile struct {
	Address Address
	Data    []byte
}

// Chop splits the populated content of [start, endex) into tiles of
// width step. If align is true, tile boundaries fall on multiples of
// step: the first tile starts at start and may then be short. The last
// tile ends at endex and may be short either way. Tiles with no
// populated byte are skipped; gap bytes inside a kept tile read as 0x00.
func (m *Memory) Chop(step int64, start, endex Address, align bool) []Tile {
	if step < 1 {
		step = 1
	}
	var tiles []Tile
	a := start
	if align {
		a = start - Address(start%Address(step))
		if a > start {
			a -= Address(step)
		}
	}
	for a < endex {
		hi := block.ClampHi(a+Address(step), endex)
		lo := block.ClampLo(a, start)
		data := m.ToBytes(lo, hi, nil)
		mask := m.presenceMask(lo, hi)
		if anyTrue(mask) {
			tiles = append(tiles, Tile{Address: lo, Data: data})
		}
		a = hi
	}
	return tiles
}

func anyTrue(mask []bool) bool {
	for _, v := range mask {
		if v {
			return true
		}
	}
	return false
}

// Validate verifies I1-I3 and the bounds invariant.
func (m *Memory) Validate() error {
	blocks := m.blocks.Blocks()
	for i, b := range blocks {
		if len(b.Data) == 0 {
			return ErrInvariantBroken
		}
		if i > 0 {
			prev := blocks[i-1]
			if !(prev.Start < b.Start) {
				return ErrInvariantBroken
			}
			if !(prev.Endex() < b.Start) {
				return ErrInvariantBroken
			}
		}
	}
	if m.boundStart != nil && m.boundEndex != nil && *m.boundStart > *m.boundEndex {
		return ErrInvariantBroken
	}
	if len(blocks) > 0 {
		if m.boundStart != nil && blocks[0].Start < *m.boundStart {
			return ErrInvariantBroken
		}
		if m.boundEndex != nil && blocks[len(blocks)-1].Endex() > *m.boundEndex {
			return ErrInvariantBroken
		}
	}
	return nil
}
