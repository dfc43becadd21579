package memory

import "encoding/hex"

func decodeHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

// Hex returns the hexadecimal encoding of the full populated contiguous
// view, failing if the content is split across blocks or has gaps.
func (m *Memory) Hex() (string, error) {
	if !m.Contiguous() {
		return "", ErrContiguityRequired
	}
	if m.blocks.Len() == 0 {
		return "", nil
	}
	return hex.EncodeToString(m.blocks.At(0).Data), nil
}
