package landmask

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/airbusgeo/godal"
)

func TestBoundsWithNegativeDY(t *testing.T) {
	grid := GridDescriptor{OriginX: 0, OriginY: 20, DX: 10, DY: -10, Rows: 2, Cols: 3}

	minX, minY, maxX, maxY := grid.Bounds()
	if minX != 0 || minY != 0 || maxX != 30 || maxY != 20 {
		t.Errorf("got (%g, %g, %g, %g), want (0, 0, 30, 20)", minX, minY, maxX, maxY)
	}
}

func TestWithResolutionKeepsExtent(t *testing.T) {
	fine := testGrid(9, 9, 10)
	coarse := fine.WithResolution(30)

	if coarse.Rows != 3 || coarse.Cols != 3 {
		t.Errorf("got %dx%d, want 3x3", coarse.Cols, coarse.Rows)
	}
	if coarse.DX != 30 || coarse.DY != -30 {
		t.Errorf("got pixel %gx%g, want 30x-30", coarse.DX, coarse.DY)
	}

	fMinX, fMinY, fMaxX, fMaxY := fine.Bounds()
	cMinX, cMinY, cMaxX, cMaxY := coarse.Bounds()
	if fMinX != cMinX || fMinY != cMinY || fMaxX != cMaxX || fMaxY != cMaxY {
		t.Errorf("coarse bounds (%g, %g, %g, %g) differ from fine bounds (%g, %g, %g, %g)",
			cMinX, cMinY, cMaxX, cMaxY, fMinX, fMinY, fMaxX, fMaxY)
	}
}

func TestResolveGrid(t *testing.T) {
	path := writeRaster(t, testGrid(2, 2, 30), []uint16{1, 2, 3, 4})

	grid, err := ResolveGrid(path)
	if err != nil {
		t.Fatal(err)
	}
	if !sameGeometry(grid, testGrid(2, 2, 30)) {
		t.Errorf("got %+v", grid)
	}
}

func TestResolveGridMissingFile(t *testing.T) {
	if _, err := ResolveGrid(filepath.Join(t.TempDir(), "missing.tif")); err == nil {
		t.Error("expected an error for a missing raster")
	}
}

// writeRaster materializes a small georeferenced GeoTIFF for tests.
func writeRaster(t testing.TB, grid GridDescriptor, data []uint16) string {
	godal.RegisterAll()
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.tif")
	ds, err := godal.Create(godal.GTiff, path, 1, godal.UInt16, grid.Cols, grid.Rows)
	if err != nil {
		t.Fatal(err)
	}
	if err := ds.SetGeoTransform(grid.GeoTransform()); err != nil {
		t.Fatal(err)
	}
	if grid.Projection != "" {
		if err := ds.SetProjection(grid.Projection); err != nil {
			t.Fatal(err)
		}
	}
	bands := ds.Bands()
	if err := bands[0].Write(0, 0, data, grid.Cols, grid.Rows); err != nil {
		t.Fatal(err)
	}
	if err := ds.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
	return path
}
