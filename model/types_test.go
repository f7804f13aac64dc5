package model

import "testing"

func TestRegionNormalize(t *testing.T) {
	r := Region{Min: Coordinate{X: 5, Y: 1}, Max: Coordinate{X: 2, Y: 4}}.Normalize()
	want := Region{Min: Coordinate{X: 2, Y: 1}, Max: Coordinate{X: 5, Y: 4}}
	if r != want {
		t.Fatalf("Normalize() = %+v, expected %+v", r, want)
	}
	if r.Area() != 16 {
		t.Fatalf("Area() = %d, expected 16", r.Area())
	}
}

func TestRegionClip(t *testing.T) {
	size := Size{W: 10, H: 8}
	tests := []struct {
		name   string
		region Region
		want   Region
		ok     bool
	}{
		{
			name:   "inside",
			region: NewRegion(Coordinate{X: 1, Y: 1}, Coordinate{X: 3, Y: 3}),
			want:   NewRegion(Coordinate{X: 1, Y: 1}, Coordinate{X: 3, Y: 3}),
			ok:     true,
		},
		{
			name:   "overhanging",
			region: Region{Min: Coordinate{X: 12, Y: 9}, Max: Coordinate{X: -4, Y: -2}},
			want:   size.Bounds(),
			ok:     true,
		},
		{
			name:   "outside",
			region: NewRegion(Coordinate{X: 20, Y: 0}, Coordinate{X: 30, Y: 5}),
			ok:     false,
		},
		{
			name:   "negative",
			region: NewRegion(Coordinate{X: -5, Y: -5}, Coordinate{X: -1, Y: 3}),
			ok:     false,
		},
	}

	for _, tt := range tests {
		got, ok := tt.region.Clip(size)
		if ok != tt.ok {
			t.Fatalf("%s: Clip ok = %v, expected %v", tt.name, ok, tt.ok)
		}
		if ok && got != tt.want {
			t.Fatalf("%s: Clip = %+v, expected %+v", tt.name, got, tt.want)
		}
	}
}

func TestSortCoordinatesRowMajor(t *testing.T) {
	cells := SortCoordinates([]Coordinate{{X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 1}, {X: 5, Y: 0}})
	want := []Coordinate{{X: 5, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}, {X: 0, Y: 2}}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("SortCoordinates()[%d] = %+v, expected %+v", i, cells[i], want[i])
		}
	}
}
