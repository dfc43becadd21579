package block

import (
	"reflect"
	"testing"
)

func newVector(blocks ...Block) *Vector {
	v := &Vector{}
	v.blocks = append(v.blocks, blocks...)
	return v
}

func TestVectorWriteMergesAdjacent(t *testing.T) {
	tests := []struct {
		name string
		seed []Block
		at   Address
		data []byte
		want []Block
	}{
		{
			name: "into empty vector",
			seed: nil,
			at:   10,
			data: []byte("AB"),
			want: []Block{{Start: 10, Data: []byte("AB")}},
		},
		{
			name: "merges with preceding adjacent block",
			seed: []Block{{Start: 0, Data: []byte("AB")}},
			at:   2,
			data: []byte("CD"),
			want: []Block{{Start: 0, Data: []byte("ABCD")}},
		},
		{
			name: "merges with following adjacent block",
			seed: []Block{{Start: 4, Data: []byte("CD")}},
			at:   2,
			data: []byte("AB"),
			want: []Block{{Start: 2, Data: []byte("ABCD")}},
		},
		{
			name: "bridges two blocks into one",
			seed: []Block{{Start: 0, Data: []byte("AB")}, {Start: 4, Data: []byte("EF")}},
			at:   2,
			data: []byte("CD"),
			want: []Block{{Start: 0, Data: []byte("ABCDEF")}},
		},
		{
			name: "overwrites in place without touching neighbors",
			seed: []Block{{Start: 0, Data: []byte("ABCD")}},
			at:   1,
			data: []byte("xy"),
			want: []Block{{Start: 0, Data: []byte("AxyD")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVector(tt.seed...)
			v.Write(tt.at, tt.data)
			if !reflect.DeepEqual(v.blocks, tt.want) {
				t.Fatalf("got %+v, want %+v", v.blocks, tt.want)
			}
		})
	}
}

func TestVectorClear(t *testing.T) {
	tests := []struct {
		name       string
		seed       []Block
		start, end Address
		want       []Block
	}{
		{
			name:  "removes whole block",
			seed:  []Block{{Start: 0, Data: []byte("ABCD")}},
			start: 0, end: 4,
			want: nil,
		},
		{
			name:  "trims tail",
			seed:  []Block{{Start: 0, Data: []byte("ABCD")}},
			start: 2, end: 4,
			want: []Block{{Start: 0, Data: []byte("AB")}},
		},
		{
			name:  "trims head",
			seed:  []Block{{Start: 0, Data: []byte("ABCD")}},
			start: 0, end: 2,
			want: []Block{{Start: 2, Data: []byte("CD")}},
		},
		{
			name:  "splits in middle",
			seed:  []Block{{Start: 0, Data: []byte("ABCD")}},
			start: 1, end: 2,
			want: []Block{{Start: 0, Data: []byte("A")}, {Start: 2, Data: []byte("CD")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVector(tt.seed...)
			v.Clear(tt.start, tt.end)
			if len(v.blocks) == 0 && tt.want == nil {
				return
			}
			if !reflect.DeepEqual(v.blocks, tt.want) {
				t.Fatalf("got %+v, want %+v", v.blocks, tt.want)
			}
		})
	}
}

func TestVectorInsertShiftsFollowing(t *testing.T) {
	v := newVector(Block{Start: 0, Data: []byte("AB")}, Block{Start: 10, Data: []byte("XY")})
	v.Insert(1, []byte("zz"))

	want := []Block{{Start: 0, Data: []byte("AzzB")}, {Start: 12, Data: []byte("XY")}}
	if !reflect.DeepEqual(v.blocks, want) {
		t.Fatalf("got %+v, want %+v", v.blocks, want)
	}
}

func TestVectorDeleteShiftsFollowing(t *testing.T) {
	v := newVector(Block{Start: 0, Data: []byte("ABCD")}, Block{Start: 10, Data: []byte("XY")})
	v.Delete(1, 2)

	want := []Block{{Start: 0, Data: []byte("AD")}, {Start: 8, Data: []byte("XY")}}
	if !reflect.DeepEqual(v.blocks, want) {
		t.Fatalf("got %+v, want %+v", v.blocks, want)
	}
}

func TestVectorIndexAt(t *testing.T) {
	v := newVector(Block{Start: 0, Data: []byte("AB")}, Block{Start: 10, Data: []byte("XY")})

	if i, ok := v.IndexAt(0); i != 0 || !ok {
		t.Fatalf("IndexAt(0) = (%d, %v), want (0, true)", i, ok)
	}
	if i, ok := v.IndexAt(1); i != 0 || !ok {
		t.Fatalf("IndexAt(1) = (%d, %v), want (0, true)", i, ok)
	}
	if i, ok := v.IndexAt(5); ok {
		t.Fatalf("IndexAt(5) = (%d, %v), want ok=false", i, ok)
	}
	if i, ok := v.IndexAt(11); i != 1 || !ok {
		t.Fatalf("IndexAt(11) = (%d, %v), want (1, true)", i, ok)
	}
}

func TestVectorClearThenWriteReconverges(t *testing.T) {
	v := newVector(Block{Start: 0, Data: []byte("ABCDEF")})
	v.Clear(2, 4)
	v.Write(2, []byte("CD"))

	want := []Block{{Start: 0, Data: []byte("ABCDEF")}}
	if !reflect.DeepEqual(v.blocks, want) {
		t.Fatalf("got %+v, want %+v", v.blocks, want)
	}
}
