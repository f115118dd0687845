package maskio

import (
	"errors"
	"fmt"

	"github.com/airbusgeo/godal"
	"github.com/sirupsen/logrus"

	"landcover-tools/landmask"
)

// Display colors for the mask classes, RGBA.
var classColors = map[uint16][4]int16{
	landmask.CodeTree:          {34, 139, 34, 255},
	landmask.CodeUrbanMajority: {255, 165, 0, 255},
	landmask.CodeUrbanDense:    {178, 34, 34, 255},
	landmask.CodeWater:         {0, 0, 255, 255},
	landmask.CodeUnclassified:  {200, 200, 200, 255},
}

// AppendColorTable copies a classification raster to dstPath and attaches a
// color table covering the mask class codes, for direct visualization.
func AppendColorTable(srcPath, dstPath string) (err error) {
	godal.RegisterAll()

	src, err := godal.Open(srcPath)
	if err != nil {
		logrus.Error(err)
		return fmt.Errorf("open %s: %w", srcPath, err)
	}
	defer func() {
		err = errors.Join(err, src.Close())
	}()

	dst, err := src.Translate(dstPath, nil)
	if err != nil {
		return fmt.Errorf("copy to %s: %w", dstPath, err)
	}
	defer func() {
		err = errors.Join(err, dst.Close())
	}()

	// GDAL color tables are indexed by cell value, so the table spans up to
	// the largest class code.
	entries := make([][4]int16, int(landmask.CodeUnclassified)+1)
	for code, rgba := range classColors {
		entries[code] = rgba
	}
	band := dst.Bands()[0]
	if err := band.SetColorTable(godal.ColorTable{
		PaletteInterp: godal.RGBPalette,
		Entries:       entries,
	}); err != nil {
		return err
	}
	logrus.Infof("Wrote %s", dstPath)
	return nil
}
