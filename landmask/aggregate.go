package landmask

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// AggregateSum counts, per coarse cell, the fine pixels of an indicator
// layer inside that cell's footprint. The coarse pixel size must be an exact
// multiple of the fine pixel size so that footprints nest; anything else is
// rejected as ErrGridMismatch rather than silently truncated.
//
// Border cells whose footprint extends past the source extent get the sum of
// whichever source pixels are present (GDAL clamps, it does not zero-pad).
func AggregateSum(indicator *RasterLayer, coarse GridDescriptor, scratchDir, name string) (layer *RasterLayer, err error) {
	if err := checkNestedGrids(indicator.Grid, coarse); err != nil {
		return nil, err
	}

	srcPath := filepath.Join(scratchDir, fmt.Sprintf("indicator_%s_%.0fm.tif", name, indicator.Grid.DX))
	dstPath := filepath.Join(scratchDir, fmt.Sprintf("aggregate_sum_%s_%.0fm.tif", name, coarse.DX))

	ds, err := datasetFromLayer(indicator, srcPath)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	defer func() {
		err = errors.Join(err, ds.Close())
	}()

	return alignDataset(ds, coarse, ResampleSum, dstPath)
}

func checkNestedGrids(fine GridDescriptor, coarse GridDescriptor) error {
	ratioX := coarse.DX / fine.DX
	ratioY := coarse.DY / fine.DY
	if !isIntegral(ratioX) || !isIntegral(ratioY) {
		return fmt.Errorf("%w: coarse pixel %gx%g is not an integer multiple of fine pixel %gx%g",
			ErrGridMismatch, coarse.DX, coarse.DY, fine.DX, fine.DY)
	}
	return nil
}

func isIntegral(ratio float64) bool {
	const eps = 1e-9
	return ratio > 0 && math.Abs(ratio-math.Round(ratio)) < eps
}
