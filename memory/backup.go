package memory

// backupKind tags which restore strategy a Backup carries, so Restore
// can dispatch on one struct instead of a type per operation -
// mirroring how history.Operation carries OldText/NewText and a single
// Invert method rather than a Command per edit kind.
type backupKind int

const (
	backupWrite backupKind = iota
	backupInsert
	backupDelete
	backupClear
	backupShift
	backupPoke
	backupFlood
)

// Backup is the minimal state needed to undo one mutating operation. It
// is itself a small Memory-shaped value, not a diff: restoring it
// re-applies a Write (for content) or a Clear/Delete (for a gap or a
// shift), exactly reconstructing the pre-state over the affected range.
type Backup struct {
	kind  backupKind
	start Address
	endex Address

	content *Memory // the extracted pre-state, for write/clear/shift
	offset  Address // for shift: the offset that was applied

	pokeAddr    Address
	pokeValue   byte
	pokePresent bool

	gaps []gapInterval // for flood: the gap intervals filled in
}

// WriteBackup captures the state of [a, a+size) before a Write.
func (m *Memory) WriteBackup(a Address, size int) *Backup {
	endex := a + Address(size)
	return &Backup{kind: backupWrite, start: a, endex: endex, content: m.Extract(a, endex, nil, 1)}
}

// InsertBackup captures enough to undo an Insert: just the address and
// size, since restoring an insert is a delete.
func (m *Memory) InsertBackup(a Address, size int) *Backup {
	return &Backup{kind: backupInsert, start: a, endex: a + Address(size)}
}

// DeleteBackup captures [start, endex) before a Delete.
func (m *Memory) DeleteBackup(start, endex Address) *Backup {
	return &Backup{kind: backupDelete, start: start, endex: endex, content: m.Extract(start, endex, nil, 1)}
}

// ClearBackup captures [start, endex) before a Clear.
func (m *Memory) ClearBackup(start, endex Address) *Backup {
	return &Backup{kind: backupClear, start: start, endex: endex, content: m.Extract(start, endex, nil, 1)}
}

// ShiftBackup captures whatever portion of the content would be
// clipped away by bounds if offset were applied now.
func (m *Memory) ShiftBackup(offset Address) *Backup {
	b := &Backup{kind: backupShift, offset: offset}
	cs, ce, ok := m.blocks.Span()
	if !ok {
		return b
	}
	ns, ne := cs+offset, ce+offset
	if m.boundStart != nil && ns < *m.boundStart {
		b.content = m.Extract(cs, cs+(*m.boundStart-ns), nil, 1)
		b.start = cs
	}
	if m.boundEndex != nil && ne > *m.boundEndex {
		lost := m.Extract(ce-(ne-*m.boundEndex), ce, nil, 1)
		if b.content == nil {
			b.content = lost
		}
		b.endex = ce
	}
	return b
}

// FloodBackup captures the gap intervals within [start, endex) that a
// Flood would fill; restoring re-clears exactly those intervals,
// leaving any content already present untouched.
func (m *Memory) FloodBackup(start, endex Address) *Backup {
	return &Backup{kind: backupFlood, start: start, endex: endex, gaps: m.gapsIn(start, endex)}
}

// PokeBackup captures the current value at a before a Poke.
func (m *Memory) PokeBackup(a Address) *Backup {
	v, ok := m.Peek(a)
	return &Backup{kind: backupPoke, pokeAddr: a, pokeValue: v, pokePresent: ok}
}

// Restore reapplies a Backup, returning the Memory to the state it was
// in when the Backup was taken (over the affected range).
func (m *Memory) Restore(b *Backup) {
	switch b.kind {
	case backupWrite, backupClear:
		m.blocks.Clear(b.start, b.endex)
		if b.content != nil {
			for _, blk := range b.content.blocks.Blocks() {
				m.blocks.Write(blk.Start, blk.Data)
			}
		}
	case backupDelete:
		// Restoring a delete is an insert of the extracted content
		// back at start.
		size := b.endex - b.start
		m.blocks.Insert(b.start, make([]byte, size))
		m.blocks.Clear(b.start, b.endex)
		if b.content != nil {
			for _, blk := range b.content.blocks.Blocks() {
				m.blocks.Write(blk.Start, blk.Data)
			}
		}

	case backupInsert:
		// Restoring an insert is a delete.
		m.blocks.Delete(b.start, b.endex-b.start)
	case backupShift:
		m.blocks.ShiftAll(-b.offset)
		if b.content != nil {
			for _, blk := range b.content.blocks.Blocks() {
				m.blocks.Write(blk.Start, blk.Data)
			}
		}
	case backupPoke:
		if b.pokePresent {
			m.blocks.Write(b.pokeAddr, []byte{b.pokeValue})
		} else {
			m.blocks.Clear(b.pokeAddr, b.pokeAddr+1)
		}
	case backupFlood:
		for _, g := range b.gaps {
			m.blocks.Clear(g.start, g.endex)
		}
	}
}
