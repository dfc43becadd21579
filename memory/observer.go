package memory

//go:generate mockgen -source observer.go -destination observer_mock.go -package memory

// MutationObserver is notified after every successful mutating
// operation on a Memory, except Restore and SetBounds, which change
// content without notifying. It has no bearing on the operation's outcome;
// a Memory with no observer attached behaves identically. This gives a
// caller (for instance a future UI layer tracking dirty regions) a
// place to hook without this package needing to know about it.
type MutationObserver interface {
	OnWrite(start, endex Address)
	OnDelete(start, endex Address)
	OnShift(offset Address)
	OnClear(start, endex Address)
}

func (m *Memory) notifyWrite(start, endex Address) {
	if m.observer != nil {
		m.observer.OnWrite(start, endex)
	}
}

func (m *Memory) notifyDelete(start, endex Address) {
	if m.observer != nil {
		m.observer.OnDelete(start, endex)
	}
}

func (m *Memory) notifyShift(offset Address) {
	if m.observer != nil {
		m.observer.OnShift(offset)
	}
}

func (m *Memory) notifyClear(start, endex Address) {
	if m.observer != nil {
		m.observer.OnClear(start, endex)
	}
}
