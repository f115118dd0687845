package landmask

import (
	"errors"
	"fmt"

	"github.com/airbusgeo/godal"
	"github.com/sirupsen/logrus"
)

// Resampling selects the warp kernel. Nearest keeps categorical values
// intact; Sum counts contributing source pixels per target cell and is only
// meaningful on 0/1 indicator layers.
type Resampling int

const (
	ResampleNearest Resampling = iota
	ResampleSum
)

func (r Resampling) String() string {
	if r == ResampleSum {
		return "sum"
	}
	return "near"
}

// Align warps the raster at srcPath onto the target grid, materializing the
// result at dstPath and returning it in memory. The output is guaranteed to
// sample exactly the target grid, whatever the source's native projection
// and resolution.
func Align(srcPath string, target GridDescriptor, resampling Resampling, dstPath string) (layer *RasterLayer, err error) {
	ds, err := godal.Open(srcPath)
	if err != nil {
		logrus.Error(err)
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidRaster, srcPath, err)
	}
	defer func() {
		err = errors.Join(err, ds.Close())
	}()
	return alignDataset(ds, target, resampling, dstPath)
}

func alignDataset(ds *godal.Dataset, target GridDescriptor, resampling Resampling, dstPath string) (layer *RasterLayer, err error) {
	minX, minY, maxX, maxY := target.Bounds()
	switches := []string{
		"-te", fmt.Sprintf("%g", minX), fmt.Sprintf("%g", minY),
		fmt.Sprintf("%g", maxX), fmt.Sprintf("%g", maxY),
		"-tr", fmt.Sprintf("%g", target.DX), fmt.Sprintf("%g", -target.DY),
		"-r", resampling.String(),
		"-ot", "UInt16",
	}
	if target.Projection != "" {
		switches = append(switches, "-t_srs", target.Projection)
	}

	logrus.Debugf("Warping to %s (resampling %s)", dstPath, resampling)
	warped, err := godal.Warp(dstPath, []*godal.Dataset{ds}, switches)
	if err != nil {
		logrus.Error(err)
		return nil, fmt.Errorf("warp to %s: %w", dstPath, err)
	}
	defer func() {
		err = errors.Join(err, warped.Close())
	}()

	layer, err = layerFromDataset(warped)
	if err != nil {
		return nil, err
	}
	if !sameGeometry(layer.Grid, target) {
		return nil, fmt.Errorf("%w: warp of %s produced %dx%d at (%g, %g), want %dx%d at (%g, %g)",
			ErrGridMismatch, dstPath,
			layer.Grid.Cols, layer.Grid.Rows, layer.Grid.OriginX, layer.Grid.OriginY,
			target.Cols, target.Rows, target.OriginX, target.OriginY)
	}
	// All downstream layers must compare cell-for-cell, so report the target
	// descriptor rather than GDAL's rewritten WKT.
	layer.Grid.Projection = target.Projection
	return layer, nil
}
