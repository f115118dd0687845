// Package landmask builds a hierarchical landcover mask over a sensor grid
// by fusing a fine-resolution and a coarse-resolution landcover
// classification. Classes of interest are tree canopy, urban and water; each
// is counted per coarse cell and the counts are resolved into a single
// classification by an ordered threshold hierarchy.
package landmask

import (
	"errors"
	"fmt"
	"math"

	"github.com/airbusgeo/godal"
	"github.com/sirupsen/logrus"
)

// Output class codes and the nodata sentinel. Unclassified is a valid class,
// so nodata is kept distinct from it.
const (
	CodeUnclassified  uint16 = 30000
	CodeTree          uint16 = 42
	CodeUrbanMajority uint16 = 2019
	CodeUrbanDense    uint16 = 20191
	CodeWater         uint16 = 25000

	NoDataValue uint16 = 65535
)

// Target mask resolution and the native resolution of the fine landcover
// source, in CRS units (metres for the UTM grids HLS products use).
const (
	TargetResolution = 30.0
	FineResolution   = 10.0
)

var (
	ErrInputNotFound = errors.New("input raster not found")
	ErrInvalidRaster = errors.New("invalid raster")
	ErrGridMismatch  = errors.New("grids do not align")
)

// GridDescriptor pins down a raster's exact sampling grid: origin, pixel
// size, dimensions and coordinate reference. DY is negative for the usual
// north-up rasters.
type GridDescriptor struct {
	OriginX    float64
	OriginY    float64
	DX         float64
	DY         float64
	Rows       int
	Cols       int
	Projection string
}

// Bounds returns the grid's extent as (minX, minY, maxX, maxY).
func (g GridDescriptor) Bounds() (minX, minY, maxX, maxY float64) {
	xf := g.OriginX + float64(g.Cols)*g.DX
	yf := g.OriginY + float64(g.Rows)*g.DY
	minX, maxX = math.Min(g.OriginX, xf), math.Max(g.OriginX, xf)
	minY, maxY = math.Min(g.OriginY, yf), math.Max(g.OriginY, yf)
	return minX, minY, maxX, maxY
}

// GeoTransform returns the grid as a GDAL affine geotransform.
func (g GridDescriptor) GeoTransform() [6]float64 {
	return [6]float64{g.OriginX, g.DX, 0, g.OriginY, 0, g.DY}
}

// WithResolution derives a grid covering the same extent at a different
// pixel size, keeping the origin and projection.
func (g GridDescriptor) WithResolution(res float64) GridDescriptor {
	minX, minY, maxX, maxY := g.Bounds()
	out := g
	out.DX = res
	out.DY = -res
	out.Cols = int(math.Round((maxX - minX) / res))
	out.Rows = int(math.Round((maxY - minY) / res))
	return out
}

// sameGeometry reports whether two grids sample the same cells, ignoring the
// projection string, which GDAL may rewrite into an equivalent WKT form.
func sameGeometry(a, b GridDescriptor) bool {
	const eps = 1e-6
	return math.Abs(a.OriginX-b.OriginX) < eps &&
		math.Abs(a.OriginY-b.OriginY) < eps &&
		math.Abs(a.DX-b.DX) < eps &&
		math.Abs(a.DY-b.DY) < eps &&
		a.Rows == b.Rows && a.Cols == b.Cols
}

// RasterLayer is a single-band raster held in memory alongside its grid.
// Stages of the pipeline hand layers forward without mutating them.
type RasterLayer struct {
	Grid   GridDescriptor
	Data   []uint16
	NoData *float64
}

// At returns the cell value at (row, col), row-major as GDAL reads it.
func (l *RasterLayer) At(row, col int) uint16 {
	return l.Data[row*l.Grid.Cols+col]
}

// NewLayer allocates a layer on the given grid with every cell set to fill.
func NewLayer(grid GridDescriptor, fill uint16) *RasterLayer {
	data := make([]uint16, grid.Rows*grid.Cols)
	if fill != 0 {
		for i := range data {
			data[i] = fill
		}
	}
	return &RasterLayer{Grid: grid, Data: data}
}

// ResolveGrid reads the sampling grid of the raster at path. The pipeline
// calls this once on the reference product and derives every other grid
// from the result.
func ResolveGrid(path string) (grid GridDescriptor, err error) {
	ds, err := godal.Open(path)
	if err != nil {
		logrus.Error(err)
		return GridDescriptor{}, fmt.Errorf("%w: %s: %s", ErrInvalidRaster, path, err)
	}
	defer func() {
		err = errors.Join(err, ds.Close())
	}()

	gt, err := ds.GeoTransform()
	if err != nil {
		return GridDescriptor{}, fmt.Errorf("%w: %s: no geotransform", ErrInvalidRaster, path)
	}
	struc := ds.Structure()
	grid = GridDescriptor{
		OriginX:    gt[0],
		OriginY:    gt[3],
		DX:         gt[1],
		DY:         gt[5],
		Rows:       struc.SizeY,
		Cols:       struc.SizeX,
		Projection: ds.Projection(),
	}
	return grid, nil
}

// layerFromDataset reads the first band of an open dataset into a layer.
func layerFromDataset(ds *godal.Dataset) (*RasterLayer, error) {
	gt, err := ds.GeoTransform()
	if err != nil {
		return nil, fmt.Errorf("%w: no geotransform", ErrInvalidRaster)
	}
	struc := ds.Structure()
	grid := GridDescriptor{
		OriginX:    gt[0],
		OriginY:    gt[3],
		DX:         gt[1],
		DY:         gt[5],
		Rows:       struc.SizeY,
		Cols:       struc.SizeX,
		Projection: ds.Projection(),
	}

	buf := make([]uint16, struc.SizeX*struc.SizeY)
	band := ds.Bands()[0]
	if err := band.Read(0, 0, buf, struc.SizeX, struc.SizeY); err != nil {
		return nil, err
	}
	layer := &RasterLayer{Grid: grid, Data: buf}
	if noData, ok := band.NoData(); ok {
		layer.NoData = &noData
	}
	return layer, nil
}

// datasetFromLayer materializes a layer as a georeferenced GeoTIFF at path,
// returning the open dataset. The caller owns the Close.
func datasetFromLayer(layer *RasterLayer, path string) (*godal.Dataset, error) {
	ds, err := godal.Create(godal.GTiff, path, 1, godal.UInt16, layer.Grid.Cols, layer.Grid.Rows)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	if err := ds.SetGeoTransform(layer.Grid.GeoTransform()); err != nil {
		return nil, errors.Join(err, ds.Close())
	}
	if err := ds.SetProjection(layer.Grid.Projection); err != nil {
		return nil, errors.Join(err, ds.Close())
	}
	bands := ds.Bands()
	if err := bands[0].Write(0, 0, layer.Data, layer.Grid.Cols, layer.Grid.Rows); err != nil {
		return nil, errors.Join(err, ds.Close())
	}
	return ds, nil
}
