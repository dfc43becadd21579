package memory

// View is a read-only window over a Memory's [start, endex) range. It
// never copies; it borrows. While at least one View is held on a
// Memory, callers should not mutate the borrowed range - Release
// drops the borrow so the Memory can enforce that contract.
type View struct {
	m            *Memory
	start, endex Address
	released     bool
}

// View acquires a read-only window over [start, endex), incrementing
// the Memory's borrow count.
func (m *Memory) View(start, endex Address) *View {
	m.viewCount++
	return &View{m: m, start: start, endex: endex}
}

// Release drops the borrow. Calling Release twice is a no-op.
func (v *View) Release() {
	if v.released {
		return
	}
	v.released = true
	v.m.viewCount--
}

// Borrowed reports whether the Memory has any live, unreleased Views.
func (m *Memory) Borrowed() bool {
	return m.viewCount > 0
}

// Peek reads through to the underlying Memory, clamped to the view's
// range.
func (v *View) Peek(a Address) (byte, bool) {
	if a < v.start || a >= v.endex {
		return 0, false
	}
	return v.m.Peek(a)
}

// Len returns the view's width.
func (v *View) Len() int64 {
	if v.endex <= v.start {
		return 0
	}
	return v.endex - v.start
}

// Span returns the view's (start, endex).
func (v *View) Span() (Address, Address) {
	return v.start, v.endex
}

// ToBytes materialises the view's range; see Memory.ToBytes.
func (v *View) ToBytes(pattern []byte) []byte {
	return v.m.ToBytes(v.start, v.endex, pattern)
}

// Items returns a forward iterator over the view's populated pairs.
func (v *View) Items() *PairIter {
	return v.m.Items(v.start, v.endex)
}

// CheckBorrow reports whether any View is live while [start, endex) is
// non-empty; it does not compare the range with the views' own ranges,
// so a View over a disjoint range also counts as a conflict. Callers
// that want enforcement check this before
// calling a mutating method; Memory itself does not call it
// automatically, since the spec makes enforcement optional.
func (m *Memory) CheckBorrow(start, endex Address) bool {
	return m.viewCount > 0 && start < endex
}
