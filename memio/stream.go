package memio

import (
	"errors"
	"io"

	"github.com/sparsemem/memory/memory"
)

// ErrDataGap is returned by Read in strict mode when the cursor
// crosses an empty cell instead of materialising a fill byte.
var ErrDataGap = errors.New("memio: data gap encountered")

// Option configures a Stream at construction time.
type Option func(*Stream)

// WithFillByte sets the byte used to materialise gaps on Read. The
// default is 0x00.
func WithFillByte(b byte) Option {
	return func(s *Stream) { s.fill = b }
}

// WithStrict makes Read fail with ErrDataGap instead of filling gaps.
func WithStrict() Option {
	return func(s *Stream) { s.strict = true }
}

// Stream wraps a memory.Memory with a cursor, presenting it as a
// seekable io.Reader/io.Writer/io.Seeker.
type Stream struct {
	m      *memory.Memory
	pos    memory.Address
	fill   byte
	strict bool
}

// New wraps m in a Stream positioned at m's Start().
func New(m *memory.Memory, opts ...Option) *Stream {
	s := &Stream{m: m, pos: m.Start()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tell returns the current cursor position.
func (s *Stream) Tell() memory.Address {
	return s.pos
}

// Read implements io.Reader. Gaps are filled with the configured fill
// byte unless strict mode is set, in which case a gap yields
// ErrDataGap.
func (s *Stream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	endex := s.m.Endex()
	if s.pos >= endex {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) && s.pos < endex {
		v, ok := s.m.Peek(s.pos)
		if !ok {
			if s.strict {
				if n > 0 {
					return n, nil
				}
				return 0, ErrDataGap
			}
			v = s.fill
		}
		p[n] = v
		n++
		s.pos++
	}
	return n, nil
}

// Write implements io.Writer: it writes buf at the cursor and advances.
func (s *Stream) Write(buf []byte) (int, error) {
	s.m.Write(s.pos, buf)
	s.pos += memory.Address(len(buf))
	return len(buf), nil
}

// Seek implements io.Seeker.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	var base memory.Address
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = s.pos
	case io.SeekEnd:
		base = s.m.Endex()
	default:
		return 0, errors.New("memio: invalid whence")
	}
	s.pos = base + memory.Address(offset)
	return int64(s.pos), nil
}

// SkipData advances the cursor to the end of the current block, or
// leaves it unchanged if the cursor is in a gap.
func (s *Stream) SkipData() {
	_, endex, present := s.m.BlockSpan(s.pos)
	if present {
		s.pos = endex
	}
}

// SkipHole advances the cursor to the start of the next block, or to
// Endex if there is none.
func (s *Stream) SkipHole() {
	_, endex, present := s.m.BlockSpan(s.pos)
	if !present {
		if limit := s.m.Endex(); endex > limit {
			endex = limit
		}
		if endex > s.pos {
			s.pos = endex
		}
	}
}

// Truncate clears all content at or beyond address size.
func (s *Stream) Truncate(size memory.Address) {
	endex := s.m.ContentEndex()
	if endex > size {
		s.m.Clear(size, endex)
	}
}

// Peek reads up to n bytes at the cursor without advancing it.
func (s *Stream) Peek(n int) ([]byte, error) {
	saved := s.pos
	buf := make([]byte, n)
	k, err := s.Read(buf)
	s.pos = saved
	return buf[:k], err
}

// ReadLine reads up to and including the next 0x0A byte, or to Endex.
func (s *Stream) ReadLine() ([]byte, error) {
	var line []byte
	for {
		var b [1]byte
		n, err := s.Read(b[:])
		if n == 0 {
			if err == io.EOF && len(line) > 0 {
				return line, nil
			}
			return line, err
		}
		line = append(line, b[0])
		if b[0] == 0x0A {
			return line, nil
		}
	}
}

// ReadLines reads every line until EOF.
func (s *Stream) ReadLines() ([][]byte, error) {
	var lines [][]byte
	for {
		line, err := s.ReadLine()
		if len(line) > 0 {
			lines = append(lines, line)
		}
		if err != nil {
			if err == io.EOF {
				return lines, nil
			}
			return lines, err
		}
	}
}

// GetValue returns the whole populated-or-filled image from Start to
// Endex.
func (s *Stream) GetValue() []byte {
	start, endex := s.m.Span()
	return s.m.ToBytes(start, endex, []byte{s.fill})
}

// GetBuffer returns a read-only View over the whole stream's span.
func (s *Stream) GetBuffer() *memory.View {
	start, endex := s.m.Span()
	return s.m.View(start, endex)
}
