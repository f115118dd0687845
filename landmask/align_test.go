package landmask

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestAlignNearestKeepsAlignedSource(t *testing.T) {
	grid := testGrid(2, 2, 30)
	src := writeRaster(t, grid, []uint16{10, 50, 80, 111})

	layer, err := Align(src, grid, ResampleNearest, filepath.Join(t.TempDir(), "aligned.tif"))
	if err != nil {
		t.Fatal(err)
	}

	want := []uint16{10, 50, 80, 111}
	if !reflect.DeepEqual(layer.Data, want) {
		t.Errorf("got %v, want %v", layer.Data, want)
	}
	if !sameGeometry(layer.Grid, grid) {
		t.Errorf("aligned grid %+v does not match target %+v", layer.Grid, grid)
	}
}

func TestAlignResamplesToTargetGrid(t *testing.T) {
	// A 6x6 source at 10m aligned onto the same extent at 30m: nearest
	// resampling must land exactly on the 2x2 target grid.
	fine := testGrid(6, 6, 10)
	data := make([]uint16, 36)
	for i := range data {
		data[i] = uint16(i)
	}
	src := writeRaster(t, fine, data)

	target := fine.WithResolution(30)
	layer, err := Align(src, target, ResampleNearest, filepath.Join(t.TempDir(), "aligned.tif"))
	if err != nil {
		t.Fatal(err)
	}
	if !sameGeometry(layer.Grid, target) {
		t.Errorf("aligned grid %+v does not match target %+v", layer.Grid, target)
	}
}

func TestResamplingNames(t *testing.T) {
	if got := ResampleNearest.String(); got != "near" {
		t.Errorf("got %q, want %q", got, "near")
	}
	if got := ResampleSum.String(); got != "sum" {
		t.Errorf("got %q, want %q", got, "sum")
	}
}
