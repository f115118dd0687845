package landmask

import (
	"reflect"
	"testing"
)

func TestExtractIndicator(t *testing.T) {
	grid := testGrid(2, 3, 10)
	// WorldCover sample: tree, urban, open water, wetland, grass, bare.
	src := countLayer(grid, 10, 50, 80, 90, 30, 60)

	cases := []struct {
		name string
		pred ClassPredicate
		want []uint16
	}{
		{"water", In(80, 90), []uint16{0, 0, 1, 1, 0, 0}},
		{"urban", Is(50), []uint16{0, 1, 0, 0, 0, 0}},
		{"tree", Is(10), []uint16{1, 0, 0, 0, 0, 0}},
	}
	for _, c := range cases {
		got := ExtractIndicator(src, c.pred)
		if !reflect.DeepEqual(got.Data, c.want) {
			t.Errorf("%s: got %v, want %v", c.name, got.Data, c.want)
		}
		if !sameGeometry(got.Grid, grid) {
			t.Errorf("%s: indicator grid differs from source grid", c.name)
		}
	}

	// The source must come through untouched.
	want := []uint16{10, 50, 80, 90, 30, 60}
	if !reflect.DeepEqual(src.Data, want) {
		t.Errorf("source mutated: %v", src.Data)
	}
}
