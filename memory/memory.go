package memory

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/sparsemem/memory/internal/block"
)

// Address is a signed byte offset into the virtual address space.
type Address = block.Address

// Block is a contiguous populated run, used by FromBlocks and returned
// by the Blocks iterator.
type Block = block.Block

// minAddress and maxAddress are the representable limits of Address,
// used as the open-ended edges of an unbounded gap.
const (
	minAddress Address = -1 << 63
	maxAddress Address = 1<<63 - 1
)

// discardLogger is the no-op default used when WithLogger is never
// called, so logging calls are never a nil-check in the hot path.
var discardLogger = logrus.NewEntry(func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}())

// Memory is a sparse byte store: a BlockVector plus an optional bounds
// clamp, an optional diagnostic logger, and an optional mutation
// observer. The zero value is not valid; use New or one of the From*
// constructors.
type Memory struct {
	blocks block.Vector

	boundStart *Address
	boundEndex *Address

	log      *logrus.Entry
	observer MutationObserver

	viewCount int
}

// Option configures a Memory at construction time.
type Option func(*Memory)

// WithBoundStart sets a lower bound on the address range.
func WithBoundStart(start Address) Option {
	return func(m *Memory) {
		s := start
		m.boundStart = &s
	}
}

// WithBoundEndex sets an upper bound (exclusive) on the address range.
func WithBoundEndex(endex Address) Option {
	return func(m *Memory) {
		e := endex
		m.boundEndex = &e
	}
}

// WithLogger attaches a structured logger. Write, Insert, Delete, Clear
// and Reserve log each call at Debug; a Write, Insert or Reserve that
// loses data to the bounds, a Shift that drops data outside them, and a
// Poke outside them log at Warn. Clipping done by SetBounds or by a
// constructor's bound options is not logged. A nil entry is equivalent
// to omitting the option.
func WithLogger(log *logrus.Entry) Option {
	return func(m *Memory) {
		if log != nil {
			m.log = log
		}
	}
}

// WithObserver attaches a MutationObserver notified after every
// successful mutating operation except Restore and SetBounds.
func WithObserver(obs MutationObserver) Option {
	return func(m *Memory) {
		m.observer = obs
	}
}

func newMemory(opts ...Option) *Memory {
	m := &Memory{log: discardLogger}
	for _, opt := range opts {
		opt(m)
	}
	if m.boundStart != nil && m.boundEndex != nil && *m.boundStart > *m.boundEndex {
		*m.boundEndex = *m.boundStart
	}
	return m
}

// New returns an empty Memory, optionally bounded.
func New(opts ...Option) *Memory {
	return newMemory(opts...)
}

// FromBytes builds a Memory containing data as a single block starting
// at offset.
func FromBytes(data []byte, offset Address, opts ...Option) *Memory {
	m := newMemory(opts...)
	if len(data) > 0 {
		buf := data
		m.blocks.Write(offset, buf)
	}
	m.clipToBounds()
	return m
}

// FromBlocks builds a Memory from a set of (address, data) pairs,
// normalising overlaps and adjacency the same way repeated Write calls
// would.
func FromBlocks(blocks []Block, offset Address, opts ...Option) *Memory {
	m := newMemory(opts...)
	for _, b := range blocks {
		m.blocks.Write(b.Start+offset, b.Data)
	}
	m.clipToBounds()
	return m
}

// FromMemory copies another Memory's content, shifted by offset. The
// source's bounds are not copied; pass explicit Option values for the
// new Memory's bounds.
func FromMemory(src *Memory, offset Address, opts ...Option) *Memory {
	m := newMemory(opts...)
	for _, b := range src.blocks.Blocks() {
		m.blocks.Write(b.Start+offset, b.Data)
	}
	m.clipToBounds()
	return m
}

// Item is a single (address, byte) pair, used by FromItems.
type Item struct {
	Address Address
	Value   byte
}

// FromItems builds a Memory from a stream of (address, byte) pairs.
// Later items at the same address overwrite earlier ones.
func FromItems(items []Item, offset Address, opts ...Option) *Memory {
	m := newMemory(opts...)
	for _, it := range items {
		m.blocks.Write(it.Address+offset, []byte{it.Value})
	}
	m.clipToBounds()
	return m
}

// FromValues builds a Memory from consecutive (byte, bool) values
// starting at offset; a false ok produces a gap at that address.
func FromValues(values []byte, present []bool, offset Address, opts ...Option) *Memory {
	m := newMemory(opts...)
	a := offset
	var run []byte
	runStart := a
	flush := func() {
		if len(run) > 0 {
			m.blocks.Write(runStart, run)
			run = nil
		}
	}
	for i, v := range values {
		ok := present == nil || (i < len(present) && present[i])
		if !ok {
			flush()
			a++
			runStart = a
			continue
		}
		if len(run) == 0 {
			runStart = a
		}
		run = append(run, v)
		a++
	}
	flush()
	m.clipToBounds()
	return m
}

// FromHex builds a Memory from a hex string as a single contiguous
// block at address 0.
func FromHex(hexStr string, opts ...Option) (*Memory, error) {
	data, err := decodeHex(hexStr)
	if err != nil {
		return nil, err
	}
	return FromBytes(data, 0, opts...), nil
}

// ContentStart returns the first populated address, ignoring bounds.
// An empty Memory reports BoundStart if set, otherwise 0.
func (m *Memory) ContentStart() Address {
	start, _, ok := m.blocks.Span()
	if !ok {
		if m.boundStart != nil {
			return *m.boundStart
		}
		return 0
	}
	return start
}

// ContentEndex returns one past the last populated address, ignoring
// bounds. An empty Memory reports BoundEndex if set, otherwise
// BoundStart if set, otherwise 0.
func (m *Memory) ContentEndex() Address {
	_, endex, ok := m.blocks.Span()
	if !ok {
		if m.boundEndex != nil {
			return *m.boundEndex
		}
		if m.boundStart != nil {
			return *m.boundStart
		}
		return 0
	}
	return endex
}

// ContentSpan returns (ContentStart, ContentEndex).
func (m *Memory) ContentSpan() (Address, Address) {
	return m.ContentStart(), m.ContentEndex()
}

// ContentSize returns the total number of populated bytes.
func (m *Memory) ContentSize() int64 {
	var n int64
	for _, b := range m.blocks.Blocks() {
		n += b.Len()
	}
	return n
}

// ContentParts returns the number of blocks.
func (m *Memory) ContentParts() int {
	return m.blocks.Len()
}

// Start returns the bounds-overridden start: BoundStart if set and
// more restrictive, otherwise ContentStart.
func (m *Memory) Start() Address {
	start := m.ContentStart()
	if m.boundStart != nil && *m.boundStart > start {
		return *m.boundStart
	}
	if m.boundStart != nil && m.blocks.Len() == 0 {
		return *m.boundStart
	}
	return start
}

// Endex returns the bounds-overridden endex.
func (m *Memory) Endex() Address {
	endex := m.ContentEndex()
	if m.boundEndex != nil && *m.boundEndex < endex {
		return *m.boundEndex
	}
	if m.boundEndex != nil && m.blocks.Len() == 0 {
		return *m.boundEndex
	}
	return endex
}

// Span returns (Start, Endex).
func (m *Memory) Span() (Address, Address) {
	return m.Start(), m.Endex()
}

// Len returns Endex - Start, clamped to zero.
func (m *Memory) Len() int64 {
	start, endex := m.Span()
	if endex <= start {
		return 0
	}
	return endex - start
}

// Contiguous reports whether the content is a single block (or empty)
// and the bounds do not themselves introduce a gap.
func (m *Memory) Contiguous() bool {
	if m.blocks.Len() > 1 {
		return false
	}
	if m.blocks.Len() == 0 {
		return true
	}
	b := m.blocks.At(0)
	if m.boundStart != nil && *m.boundStart < b.Start {
		return false
	}
	if m.boundEndex != nil && *m.boundEndex > b.Endex() {
		return false
	}
	return true
}

// BoundStart returns the lower bound and whether one is set.
func (m *Memory) BoundStart() (Address, bool) {
	if m.boundStart == nil {
		return 0, false
	}
	return *m.boundStart, true
}

// BoundEndex returns the upper bound and whether one is set.
func (m *Memory) BoundEndex() (Address, bool) {
	if m.boundEndex == nil {
		return 0, false
	}
	return *m.boundEndex, true
}

// SetBounds assigns new bounds, retroactively clipping existing blocks.
func (m *Memory) SetBounds(start, endex *Address) {
	m.boundStart = start
	m.boundEndex = endex
	m.clipToBounds()
}

// clipToBounds deletes any content outside the active bounds. Called
// after construction and after SetBounds.
func (m *Memory) clipToBounds() {
	if m.boundStart != nil {
		if start, _, ok := m.blocks.Span(); ok && start < *m.boundStart {
			m.blocks.Clear(start, *m.boundStart)
		}
	}
	if m.boundEndex != nil {
		if _, endex, ok := m.blocks.Span(); ok && endex > *m.boundEndex {
			m.blocks.Clear(*m.boundEndex, endex)
		}
	}
}

// clipRange narrows [start, endex) to the active bounds.
func (m *Memory) clipRange(start, endex Address) (Address, Address) {
	if m.boundStart != nil && start < *m.boundStart {
		start = *m.boundStart
	}
	if m.boundEndex != nil && endex > *m.boundEndex {
		endex = *m.boundEndex
	}
	if endex < start {
		endex = start
	}
	return start, endex
}

// inBounds reports whether address satisfies the active bounds.
func (m *Memory) inBounds(address Address) bool {
	if m.boundStart != nil && address < *m.boundStart {
		return false
	}
	if m.boundEndex != nil && address >= *m.boundEndex {
		return false
	}
	return true
}
