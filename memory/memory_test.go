package memory

import "testing"

func TestFromBytesSpan(t *testing.T) {
	m := FromBytes([]byte("hello"), 10)
	start, endex := m.Span()
	if start != 10 || endex != 15 {
		t.Fatalf("Span() = (%d, %d), want (10, 15)", start, endex)
	}
	if m.ContentSize() != 5 {
		t.Fatalf("ContentSize() = %d, want 5", m.ContentSize())
	}
}

func TestWritePeek(t *testing.T) {
	m := New()
	m.Write(0, []byte("AB"))

	v, ok := m.Peek(0)
	if !ok || v != 'A' {
		t.Fatalf("Peek(0) = (%d, %v), want ('A', true)", v, ok)
	}
	if _, ok := m.Peek(5); ok {
		t.Fatalf("Peek(5) present, want gap")
	}
}

func TestWriteMergesAdjacentBlocks(t *testing.T) {
	m := New()
	m.Write(0, []byte("AB"))
	m.Write(2, []byte("CD"))

	if m.ContentParts() != 1 {
		t.Fatalf("ContentParts() = %d, want 1", m.ContentParts())
	}
	if got := m.ToBytes(0, 4, nil); string(got) != "ABCD" {
		t.Fatalf("ToBytes = %q, want %q", got, "ABCD")
	}
}

func TestInsertShiftsFollowing(t *testing.T) {
	m := FromBlocks([]Block{
		{Start: 0, Data: []byte("AB")},
		{Start: 10, Data: []byte("XY")},
	}, 0)
	m.Insert(1, []byte("zz"))

	if v, ok := m.Peek(1); !ok || v != 'z' {
		t.Fatalf("Peek(1) = (%d, %v), want ('z', true)", v, ok)
	}
	if v, ok := m.Peek(12); !ok || v != 'X' {
		t.Fatalf("Peek(12) = (%d, %v), want ('X', true)", v, ok)
	}
}

func TestDeleteCompacts(t *testing.T) {
	m := FromBlocks([]Block{
		{Start: 0, Data: []byte("ABCD")},
		{Start: 10, Data: []byte("XY")},
	}, 0)
	m.Delete(1, 3)

	if got := m.ToBytes(0, 2, nil); string(got) != "AD" {
		t.Fatalf("ToBytes = %q, want %q", got, "AD")
	}
	if v, ok := m.Peek(8); !ok || v != 'X' {
		t.Fatalf("Peek(8) = (%d, %v), want ('X', true)", v, ok)
	}
}

func TestClearLeavesGap(t *testing.T) {
	m := FromBytes([]byte("ABCD"), 0)
	m.Clear(1, 3)

	if _, ok := m.Peek(1); ok {
		t.Fatalf("Peek(1) present after Clear, want gap")
	}
	if v, ok := m.Peek(3); !ok || v != 'D' {
		t.Fatalf("Peek(3) = (%d, %v), want ('D', true)", v, ok)
	}
}

func TestBoundsClipOnWrite(t *testing.T) {
	m := New(WithBoundStart(5), WithBoundEndex(10))
	m.Write(0, []byte("0123456789"))

	start, endex := m.ContentSpan()
	if start != 5 || endex != 10 {
		t.Fatalf("ContentSpan() = (%d, %d), want (5, 10)", start, endex)
	}
}

func TestSetBoundsRetroactivelyClips(t *testing.T) {
	m := FromBytes([]byte("0123456789"), 0)
	start, endex := Address(2), Address(6)
	m.SetBounds(&start, &endex)

	cs, ce := m.ContentSpan()
	if cs != 2 || ce != 6 {
		t.Fatalf("ContentSpan() = (%d, %d), want (2, 6)", cs, ce)
	}
}

func TestFindAndIndex(t *testing.T) {
	m := FromBytes([]byte("abcabc"), 0)

	a, ok := m.OFind([]byte("bc"), 0, 6)
	if !ok || a != 1 {
		t.Fatalf("OFind = (%d, %v), want (1, true)", a, ok)
	}
	a, ok = m.ORFind([]byte("bc"), 0, 6)
	if !ok || a != 4 {
		t.Fatalf("ORFind = (%d, %v), want (4, true)", a, ok)
	}
	if _, err := m.Find([]byte("zz"), 0, 6); err != ErrNotFound {
		t.Fatalf("Find err = %v, want ErrNotFound", err)
	}
	if a, err := m.Index([]byte("bc"), 0, 6); err != nil || a != 1 {
		t.Fatalf("Index = (%d, %v), want (1, nil)", a, err)
	}
}

func TestCount(t *testing.T) {
	m := FromBytes([]byte("aXaXaX"), 0)
	if n := m.Count([]byte("aX"), 0, 6); n != 3 {
		t.Fatalf("Count = %d, want 3", n)
	}
}

func TestEqualSpanAndBlockSpan(t *testing.T) {
	m := FromBlocks([]Block{
		{Start: 0, Data: []byte("AAB")},
		{Start: 5, Data: []byte("X")},
	}, 0)

	start, endex, v, present := m.EqualSpan(0)
	if !present || v != 'A' || start != 0 || endex != 2 {
		t.Fatalf("EqualSpan(0) = (%d, %d, %d, %v)", start, endex, v, present)
	}

	start, endex, present = m.BlockSpan(0)
	if !present || start != 0 || endex != 3 {
		t.Fatalf("BlockSpan(0) = (%d, %d, %v)", start, endex, present)
	}

	start, endex, present = m.BlockSpan(3)
	if present || start != 3 || endex != 5 {
		t.Fatalf("BlockSpan(3) = (%d, %d, %v), want (3, 5, false)", start, endex, present)
	}
}

func TestChopWithAlignment(t *testing.T) {
	m := FromBytes([]byte("0123456789"), 3)
	tiles := m.Chop(4, 3, 13, true)

	if len(tiles) != 4 {
		t.Fatalf("len(tiles) = %d, want 4", len(tiles))
	}
	if tiles[0].Address != 3 || len(tiles[0].Data) != 1 {
		t.Fatalf("tiles[0] = %+v, want short leading tile at 3", tiles[0])
	}
	if tiles[len(tiles)-1].Address != 12 || len(tiles[len(tiles)-1].Data) != 1 {
		t.Fatalf("last tile = %+v, want short trailing tile at 12", tiles[len(tiles)-1])
	}
}

func TestShiftRespectsBounds(t *testing.T) {
	m := FromBytes([]byte("ABCDE"), 0, WithBoundStart(0), WithBoundEndex(10))
	m.Shift(7)

	if _, ok := m.Peek(7); !ok {
		t.Fatalf("Peek(7) absent after shift")
	}
	if m.ContentEndex() > 10 {
		t.Fatalf("ContentEndex() = %d, want <= 10", m.ContentEndex())
	}
}

func TestViewBorrowAccounting(t *testing.T) {
	m := FromBytes([]byte("hello"), 0)
	if m.Borrowed() {
		t.Fatalf("Borrowed() = true before any View")
	}
	v := m.View(0, 5)
	if !m.Borrowed() {
		t.Fatalf("Borrowed() = false with a live View")
	}
	if string(v.ToBytes(nil)) != "hello" {
		t.Fatalf("View.ToBytes() = %q", v.ToBytes(nil))
	}
	v.Release()
	if m.Borrowed() {
		t.Fatalf("Borrowed() = true after Release")
	}
}

func TestValidateDetectsBrokenInvariant(t *testing.T) {
	m := FromBytes([]byte("ABCD"), 0)
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	// Set a bound below which a block already lies, bypassing the
	// clipping SetBounds would do.
	s := Address(2)
	m.boundStart = &s
	if err := m.Validate(); err != ErrInvariantBroken {
		t.Fatalf("Validate() with a block below BoundStart = %v, want ErrInvariantBroken", err)
	}
}

func TestItemsIterator(t *testing.T) {
	m := FromBlocks([]Block{
		{Start: 0, Data: []byte("AB")},
		{Start: 5, Data: []byte("X")},
	}, 0)

	var got []Address
	it := m.Items(0, 6)
	for it.Next() {
		a, _ := it.Item()
		got = append(got, a)
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 5 {
		t.Fatalf("Items order = %v", got)
	}
}

func TestToBlocksClipsToRange(t *testing.T) {
	m := FromBlocks([]Block{
		{Start: 0, Data: []byte("ABCD")},
		{Start: 10, Data: []byte("XY")},
	}, 0)

	got := m.ToBlocks(2, 11)
	want := []Block{{Start: 2, Data: []byte("CD")}, {Start: 10, Data: []byte("X")}}
	if len(got) != len(want) {
		t.Fatalf("ToBlocks = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i].Start != want[i].Start || string(got[i].Data) != string(want[i].Data) {
			t.Fatalf("ToBlocks[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestGapsIterator(t *testing.T) {
	m := FromBlocks([]Block{
		{Start: 0, Data: []byte("AB")},
		{Start: 5, Data: []byte("X")},
	}, 0)

	it := m.Gaps(0, 8)
	if !it.Next() {
		t.Fatalf("expected a gap")
	}
	start, endex := it.Gap()
	if start != 2 || endex != 5 {
		t.Fatalf("Gap() = (%d, %d), want (2, 5)", start, endex)
	}
	if !it.Next() {
		t.Fatalf("expected a second gap")
	}
	start, endex = it.Gap()
	if start != 6 || endex != 8 {
		t.Fatalf("Gap() = (%d, %d), want (6, 8)", start, endex)
	}
	if it.Next() {
		t.Fatalf("expected no more gaps")
	}
}
