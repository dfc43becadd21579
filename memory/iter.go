package memory

import "github.com/sparsemem/memory/internal/block"

// gapInterval is a half-open empty span, used internally by Flood and
// by the Gaps iterator.
type gapInterval struct {
	start, endex Address
}

// gapsIn returns the gap intervals within [start, endex), clipped to
// that range.
func (m *Memory) gapsIn(start, endex Address) []gapInterval {
	var gaps []gapInterval
	cursor := start
	for _, b := range m.blocks.Blocks() {
		bs, be := b.Start, b.Endex()
		if be <= start {
			continue
		}
		if bs >= endex {
			break
		}
		if bs > cursor {
			gaps = append(gaps, gapInterval{cursor, block.ClampHi(bs, endex)})
		}
		if be > cursor {
			cursor = be
		}
		if cursor >= endex {
			return gaps
		}
	}
	if cursor < endex {
		gaps = append(gaps, gapInterval{cursor, endex})
	}
	return gaps
}

// ValueIter lazily yields byte values over a span. Next must be called
// before the first Value access, matching the teacher's Next() bool
// iterator shape.
type ValueIter struct {
	m             *Memory
	cur, limit    Address
	step          Address
	pattern       []byte
	patternOffset Address
	value         byte
	present       bool
	done          bool
}

// Values returns a forward iterator over [start, endex). If pattern is
// non-nil, gap cells emit the cyclic pattern byte instead of absence.
func (m *Memory) Values(start, endex Address, pattern []byte) *ValueIter {
	return &ValueIter{m: m, cur: start, limit: endex, step: 1, pattern: pattern, patternOffset: start}
}

// RValues returns a reverse iterator over [start, endex).
func (m *Memory) RValues(start, endex Address, pattern []byte) *ValueIter {
	return &ValueIter{m: m, cur: endex - 1, limit: start - 1, step: -1, pattern: pattern, patternOffset: start}
}

// Next advances the iterator, returning false when exhausted.
func (it *ValueIter) Next() bool {
	if it.done {
		return false
	}
	if it.step > 0 && it.cur >= it.limit {
		it.done = true
		return false
	}
	if it.step < 0 && it.cur <= it.limit {
		it.done = true
		return false
	}
	v, ok := it.m.Peek(it.cur)
	if !ok && len(it.pattern) > 0 {
		n := Address(len(it.pattern))
		idx := ((it.cur-it.patternOffset)%n + n) % n
		v = it.pattern[idx]
		ok = true
	}
	it.value, it.present = v, ok
	it.cur += it.step
	return true
}

// Value returns the value produced by the last Next call: the byte and
// whether it is present (always true when a pattern fills gaps).
func (it *ValueIter) Value() (byte, bool) {
	return it.value, it.present
}

// pair is a populated (address, byte) observation.
type pair struct {
	address Address
	value   byte
}

func collectPairs(m *Memory, start, endex Address) []pair {
	var pairs []pair
	for _, b := range m.blocks.Blocks() {
		bs, be := b.Start, b.Endex()
		if be <= start || bs >= endex {
			continue
		}
		lo := block.ClampLo(bs, start)
		hi := block.ClampHi(be, endex)
		data := b.Slice(lo, hi)
		for i, v := range data {
			pairs = append(pairs, pair{lo + Address(i), v})
		}
	}
	return pairs
}

// PairIter yields populated (address, byte) pairs in order. All pairs
// of the requested range are collected when the iterator is created;
// only ValueIter reads cell by cell as it advances.
type PairIter struct {
	pairs []pair
	i     int
	rev   bool
}

func newPairIter(m *Memory, start, endex Address, reverse bool) *PairIter {
	return &PairIter{pairs: collectPairs(m, start, endex), i: -1, rev: reverse}
}

// Next advances the iterator.
func (it *PairIter) Next() bool {
	if it.rev {
		if it.i == -1 {
			it.i = len(it.pairs)
		}
		it.i--
		return it.i >= 0
	}
	it.i++
	return it.i < len(it.pairs)
}

// Item returns the (address, value) pair at the current position.
func (it *PairIter) Item() (Address, byte) {
	p := it.pairs[it.i]
	return p.address, p.value
}

// Key returns the address at the current position.
func (it *PairIter) Key() Address {
	return it.pairs[it.i].address
}

// Items returns a forward iterator over populated (address, value)
// pairs.
func (m *Memory) Items(start, endex Address) *PairIter {
	return newPairIter(m, start, endex, false)
}

// RItems returns a reverse iterator over populated (address, value)
// pairs.
func (m *Memory) RItems(start, endex Address) *PairIter {
	return newPairIter(m, start, endex, true)
}

// Keys returns a forward iterator over populated addresses.
func (m *Memory) Keys(start, endex Address) *PairIter {
	return newPairIter(m, start, endex, false)
}

// RKeys returns a reverse iterator over populated addresses.
func (m *Memory) RKeys(start, endex Address) *PairIter {
	return newPairIter(m, start, endex, true)
}

// IntervalIter yields the (start, endex) span of each block in order.
type IntervalIter struct {
	blocks []blockSpan
	i      int
}

type blockSpan struct {
	start, endex Address
}

// Intervals returns an iterator over each block's span, in address
// order.
func (m *Memory) Intervals() *IntervalIter {
	var spans []blockSpan
	for _, b := range m.blocks.Blocks() {
		spans = append(spans, blockSpan{b.Start, b.Endex()})
	}
	return &IntervalIter{blocks: spans, i: -1}
}

// Next advances the iterator.
func (it *IntervalIter) Next() bool {
	it.i++
	return it.i < len(it.blocks)
}

// Interval returns the current block's (start, endex).
func (it *IntervalIter) Interval() (Address, Address) {
	s := it.blocks[it.i]
	return s.start, s.endex
}

// GapIter yields the (start, endex) of each empty interval within a
// span, in address order.
type GapIter struct {
	gaps []gapInterval
	i    int
}

// Gaps returns an iterator over the gaps within [start, endex).
func (m *Memory) Gaps(start, endex Address) *GapIter {
	return &GapIter{gaps: m.gapsIn(start, endex), i: -1}
}

// Next advances the iterator.
func (it *GapIter) Next() bool {
	it.i++
	return it.i < len(it.gaps)
}

// Gap returns the current gap's (start, endex).
func (it *GapIter) Gap() (Address, Address) {
	g := it.gaps[it.i]
	return g.start, g.endex
}

// BlockIter yields a copy of each block's (start, data) in order.
type BlockIter struct {
	blocks []blockCopy
	i      int
}

type blockCopy struct {
	start Address
	data  []byte
}

// Blocks returns an iterator over (start, data copy) per block.
func (m *Memory) Blocks() *BlockIter {
	var out []blockCopy
	for _, b := range m.blocks.Blocks() {
		cp := make([]byte, len(b.Data))
		copy(cp, b.Data)
		out = append(out, blockCopy{b.Start, cp})
	}
	return &BlockIter{blocks: out, i: -1}
}

// Next advances the iterator.
func (it *BlockIter) Next() bool {
	it.i++
	return it.i < len(it.blocks)
}

// Block returns the current block's (start, data).
func (it *BlockIter) Block() (Address, []byte) {
	b := it.blocks[it.i]
	return b.start, b.data
}
