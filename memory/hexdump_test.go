package memory

import "testing"

func TestHexDumpFullLine(t *testing.T) {
	data := make([]byte, 16)
	for i := range data {
		data[i] = byte(i)
	}
	m := FromBytes(data, 0)

	got := m.HexDump(0, 16)
	want := "0000000000000000: 00 01 02 03 04 05 06 07  08 09 0a 0b 0c 0d 0e 0f  |................|\n"
	if got != want {
		t.Fatalf("HexDump =\n%q\nwant\n%q", got, want)
	}
}

func TestHexDumpWithGapsAndPrintable(t *testing.T) {
	m := FromBytes([]byte("AB"), 0)

	got := m.HexDump(0, 4)
	want := "0000000000000000: 41 42 -- -- -- -- -- --  -- -- -- -- -- -- -- --  |AB--|\n"
	if got != want {
		t.Fatalf("HexDump =\n%q\nwant\n%q", got, want)
	}
}
