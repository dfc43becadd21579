package memory

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// String returns a compact one-line summary: span, content size, and
// block count, in the spirit of the original's REPL repr().
func (m *Memory) String() string {
	start, endex := m.Span()
	return fmt.Sprintf("Memory[%d:%d) size=%s parts=%d",
		start, endex, humanize.Bytes(uint64(m.ContentSize())), m.ContentParts())
}

// Describe is String with a full breakdown of bounds, used for
// debugging and logging.
func (m *Memory) Describe() string {
	boundStart, hasStart := m.BoundStart()
	boundEndex, hasEndex := m.BoundEndex()
	return fmt.Sprintf("%s bound_start=%s bound_endex=%s",
		m.String(), optionalAddr(boundStart, hasStart), optionalAddr(boundEndex, hasEndex))
}

func optionalAddr(a Address, ok bool) string {
	if !ok {
		return "none"
	}
	return fmt.Sprintf("%d", a)
}
