package memory

import (
	"fmt"
	"strings"
)

// DefaultHexDumpColumns is the canonical column count for HexDump.
const DefaultHexDumpColumns = 16

// gapPlaceholder is the two-character stand-in for a gap byte in both
// the hex and ASCII gutters of a HexDump line.
const gapPlaceholder = "--"

// HexDump renders [start, endex) as a canonical hex/ASCII dump: 16
// bytes per line, a zero-padded 64-bit address prefix, two-hex-digit
// byte groups with an extra space after the 8th column, and a
// '|'-delimited ASCII gutter using '.' for non-printable bytes and
// "--" for gaps in both gutters.
func (m *Memory) HexDump(start, endex Address) string {
	var out strings.Builder
	columns := DefaultHexDumpColumns

	for lineStart := start; lineStart < endex; lineStart += Address(columns) {
		lineEnd := lineStart + Address(columns)
		if lineEnd > endex {
			lineEnd = endex
		}

		fmt.Fprintf(&out, "%016x:", uint64(lineStart))

		var ascii strings.Builder
		for i := 0; i < columns; i++ {
			addr := lineStart + Address(i)
			if i == 8 {
				out.WriteByte(' ')
			}
			out.WriteByte(' ')
			if addr >= lineEnd {
				out.WriteString(gapPlaceholder)
				continue
			}
			v, ok := m.Peek(addr)
			if !ok {
				out.WriteString(gapPlaceholder)
				ascii.WriteString(gapPlaceholder)
				continue
			}
			fmt.Fprintf(&out, "%02x", v)
			if v >= 0x20 && v < 0x7f {
				ascii.WriteByte(v)
			} else {
				ascii.WriteByte('.')
			}
		}

		out.WriteString("  |")
		out.WriteString(ascii.String())
		out.WriteString("|\n")
	}

	return out.String()
}
