package maskio

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"landcover-tools/landmask"
)

func testMask() *landmask.RasterLayer {
	grid := landmask.GridDescriptor{
		OriginX: 600000, OriginY: 4000020,
		DX: 30, DY: -30,
		Rows: 2, Cols: 2,
	}
	mask := landmask.NewLayer(grid, landmask.CodeUnclassified)
	mask.Data[0] = landmask.CodeWater
	mask.Data[1] = landmask.CodeWater
	mask.Data[2] = landmask.CodeTree
	return mask
}

func TestSummarize(t *testing.T) {
	rows := Summarize(testMask())

	want := []ClassRow{
		{int32(landmask.CodeTree), "tree", 1, 0.25},
		{int32(landmask.CodeUrbanMajority), "urban majority", 0, 0},
		{int32(landmask.CodeUrbanDense), "urban high density", 0, 0},
		{int32(landmask.CodeWater), "water", 2, 0.5},
		{int32(landmask.CodeUnclassified), "unclassified", 1, 0.25},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("got %v,\nwant %v", rows, want)
	}
}

func TestWriteSummaryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	if err := WriteSummaryCSV(Summarize(testMask()), path); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6", len(lines))
	}
	if lines[0] != "code,label,cells,fraction" {
		t.Errorf("got header %q", lines[0])
	}
	if lines[4] != "25000,water,2,0.5" {
		t.Errorf("got water row %q", lines[4])
	}
}
