package memory

// Write overwrites [a, a+len(data)) with data, clipping to bounds if
// set. If a portion of data is clipped away, a Warn is logged.
func (m *Memory) Write(a Address, data []byte) {
	if len(data) == 0 {
		return
	}
	endex := a + Address(len(data))
	cs, ce := m.clipRange(a, endex)
	if cs != a || ce != endex {
		m.log.WithFields(map[string]any{"start": a, "endex": endex}).Warn("write clipped by bounds")
	}
	if ce <= cs {
		return
	}
	data = data[cs-a : ce-a]
	m.blocks.Write(cs, data)
	m.log.WithFields(map[string]any{"start": cs, "endex": ce}).Debug("write")
	m.notifyWrite(cs, ce)
}

// Poke overwrites a single cell. present=false clears it.
func (m *Memory) Poke(a Address, value byte, present bool) {
	if !m.inBounds(a) {
		m.log.WithFields(map[string]any{"address": a}).Warn("poke out of bounds, ignored")
		return
	}
	if present {
		m.blocks.Write(a, []byte{value})
		m.notifyWrite(a, a+1)
		return
	}
	m.blocks.Clear(a, a+1)
	m.notifyClear(a, a+1)
}

// Insert shifts every cell at or after a right by len(data), then
// writes data at a.
func (m *Memory) Insert(a Address, data []byte) {
	if len(data) == 0 {
		return
	}
	if m.boundStart != nil && a < *m.boundStart {
		a = *m.boundStart
	}
	before := m.ContentSize() + int64(len(data))
	m.blocks.Insert(a, data)
	m.clipToBounds()
	if m.ContentSize() < before {
		m.log.WithFields(map[string]any{"address": a, "size": len(data)}).Warn("insert clipped by bounds")
	}
	m.log.WithFields(map[string]any{"address": a, "size": len(data)}).Debug("insert")
	m.notifyWrite(a, a+Address(len(data)))
}

// Delete removes [start, endex) and compacts addresses above endex
// down by (endex - start).
func (m *Memory) Delete(start, endex Address) {
	if endex <= start {
		return
	}
	m.blocks.Delete(start, endex-start)
	m.log.WithFields(map[string]any{"start": start, "endex": endex}).Debug("delete")
	m.notifyDelete(start, endex)
}

// Clear removes [start, endex), leaving a gap with no compaction.
func (m *Memory) Clear(start, endex Address) {
	if endex <= start {
		return
	}
	m.blocks.Clear(start, endex)
	m.log.WithFields(map[string]any{"start": start, "endex": endex}).Debug("clear")
	m.notifyClear(start, endex)
}

// Crop deletes everything outside [start, endex), with no compaction.
func (m *Memory) Crop(start, endex Address) {
	cs, ce, ok := m.blocks.Span()
	if !ok {
		return
	}
	if cs < start {
		m.Clear(cs, start)
	}
	if ce > endex {
		m.Clear(endex, ce)
	}
}

// Reserve shifts every cell at or after a right by size, leaving a gap.
func (m *Memory) Reserve(a Address, size int64) {
	if size <= 0 {
		return
	}
	before := m.ContentSize()
	m.blocks.Insert(a, make([]byte, size))
	m.blocks.Clear(a, a+size)
	m.clipToBounds()
	if m.ContentSize() < before {
		m.log.WithFields(map[string]any{"address": a, "size": size}).Warn("reserve discarded data outside bounds")
	}
	m.log.WithFields(map[string]any{"address": a, "size": size}).Debug("reserve")
	m.notifyShift(size)
}

// Fill overwrites the full range with the repeating pattern, aligned
// to start.
func (m *Memory) Fill(start, endex Address, pattern []byte) {
	if len(pattern) == 0 || endex <= start {
		return
	}
	buf := make([]byte, endex-start)
	for i := range buf {
		buf[i] = pattern[int(Address(i))%len(pattern)]
	}
	m.Write(start, buf)
}

// Flood writes pattern only into gaps within [start, endex), clipped to
// bounds if set. The pattern stays aligned to the unclipped start.
func (m *Memory) Flood(start, endex Address, pattern []byte) {
	origin := start
	start, endex = m.clipRange(start, endex)
	if len(pattern) == 0 || endex <= start {
		return
	}
	for _, g := range m.gapsIn(start, endex) {
		buf := make([]byte, g.endex-g.start)
		for i := range buf {
			addr := g.start + Address(i)
			buf[i] = pattern[int(((addr-origin)%Address(len(pattern))+Address(len(pattern)))%Address(len(pattern)))]
		}
		m.blocks.Write(g.start, buf)
		m.notifyWrite(g.start, g.endex)
	}
}

// Shift translates all blocks by offset; data pushed outside active
// bounds is discarded.
func (m *Memory) Shift(offset Address) {
	if offset == 0 {
		return
	}
	m.blocks.ShiftAll(offset)
	before := m.blocks.Len()
	m.clipToBounds()
	if m.blocks.Len() < before {
		m.log.WithFields(map[string]any{"offset": offset}).Warn("shift discarded data outside bounds")
	}
	m.notifyShift(offset)
}

// Append appends a single byte at ContentEndex.
func (m *Memory) Append(v byte) {
	m.Write(m.ContentEndex(), []byte{v})
}

// Extend writes src at ContentEndex + offset.
func (m *Memory) Extend(src []byte, offset Address) {
	m.Write(m.ContentEndex()+offset, src)
}
