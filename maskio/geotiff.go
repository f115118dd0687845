// Package maskio persists classification layers and derived products.
package maskio

import (
	"errors"
	"fmt"

	"github.com/airbusgeo/godal"
	"github.com/sirupsen/logrus"

	"landcover-tools/landmask"
)

// WriteGeoTIFF serializes a layer as a single-band UInt16 GeoTIFF carrying
// the layer's georeferencing and nodata marker. An existing file at path is
// overwritten. Errors propagate to the caller; a failed write leaves no
// valid output.
func WriteGeoTIFF(layer *landmask.RasterLayer, path string) (err error) {
	ds, err := godal.Create(godal.GTiff, path, 1, godal.UInt16, layer.Grid.Cols, layer.Grid.Rows)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		err = errors.Join(err, ds.Close())
	}()

	if err := ds.SetGeoTransform(layer.Grid.GeoTransform()); err != nil {
		return err
	}
	if err := ds.SetProjection(layer.Grid.Projection); err != nil {
		return err
	}

	band := ds.Bands()[0]
	if layer.NoData != nil {
		if err := band.SetNoData(*layer.NoData); err != nil {
			return err
		}
	}
	if err := band.Write(0, 0, layer.Data, layer.Grid.Cols, layer.Grid.Rows); err != nil {
		return err
	}
	logrus.Infof("Wrote %s", path)
	return nil
}
