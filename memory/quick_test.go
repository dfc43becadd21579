package memory

import (
	"testing"
	"testing/quick"
)

// TestWriteThenToBytesRoundTrips mirrors rope_test.go's
// TestInsertDeleteProperty shape: build, mutate, check the result
// matches what was written, for arbitrary byte slices and offsets.
func TestWriteThenToBytesRoundTrips(t *testing.T) {
	f := func(data []byte, rawOffset int16) bool {
		offset := Address(rawOffset)
		m := New()
		m.Write(offset, data)
		return string(m.ToBytes(offset, offset+Address(len(data)), nil)) == string(data)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// TestInsertDeleteIsIdentity mirrors rope_test.go's
// TestInsertDeleteProperty directly: inserting then deleting the same
// span restores the original content.
func TestInsertDeleteIsIdentity(t *testing.T) {
	f := func(data []byte, rawOffset uint16, insert []byte) bool {
		offset := Address(rawOffset) % Address(len(data)+1)
		m := New()
		m.Write(0, data)
		before := m.ToBytes(0, Address(len(data)), nil)

		m.Insert(offset, insert)
		m.Delete(offset, offset+Address(len(insert)))

		after := m.ToBytes(0, Address(len(data)), nil)
		return string(before) == string(after)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// TestContentSizeProperty mirrors rope_test.go's TestLenProperty: the
// reported content size always equals the bytes actually written.
func TestContentSizeProperty(t *testing.T) {
	f := func(data []byte) bool {
		if len(data) == 0 {
			return true
		}
		m := FromBytes(data, 0)
		return m.ContentSize() == int64(len(data))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// TestShiftInverseProperty checks shift(k); shift(-k) is identity for
// arbitrary small offsets, when bounds do not clip.
func TestShiftInverseProperty(t *testing.T) {
	f := func(data []byte, rawOffset int8) bool {
		if len(data) == 0 {
			return true
		}
		m := FromBytes(data, 1000)
		before := m.ToBlocks(minAddress, maxAddress)

		offset := Address(rawOffset)
		m.Shift(offset)
		m.Shift(-offset)

		after := m.ToBlocks(minAddress, maxAddress)
		if len(before) != len(after) {
			return false
		}
		for i := range before {
			if before[i].Start != after[i].Start || string(before[i].Data) != string(after[i].Data) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
