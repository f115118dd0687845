package maskio

import (
	"errors"
	"fmt"
	"os"

	"github.com/airbusgeo/godal"
	"github.com/sirupsen/logrus"
)

// Mosaic stitches per-tile mask rasters into one GeoTIFF through an
// intermediate VRT. Nearest resampling keeps the class codes intact where
// tiles overlap. With skipExistent set, an already present output is left
// untouched.
func Mosaic(inputs []string, outputPath string, skipExistent bool) (err error) {
	godal.RegisterAll()

	if skipExistent {
		if _, statErr := os.Stat(outputPath); statErr == nil {
			logrus.Infof("Found pre-computed %s, skipping", outputPath)
			return nil
		}
	}
	for _, input := range inputs {
		if _, err := os.Stat(input); err != nil {
			return fmt.Errorf("mosaic input %s: %w", input, err)
		}
	}

	vrtPath := outputPath + ".vrt"
	vrt, err := godal.BuildVRT(vrtPath, inputs, nil)
	if err != nil {
		return fmt.Errorf("create vrt: %w", err)
	}
	defer os.Remove(vrtPath)
	defer func() {
		err = errors.Join(err, vrt.Close())
	}()

	out, err := vrt.Translate(outputPath, []string{"-r", "nearest", "-ot", "UInt16"},
		godal.CreationOption("TILED=YES", "COMPRESS=LZW"))
	if err != nil {
		return fmt.Errorf("mosaic to %s: %w", outputPath, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	logrus.Infof("Wrote %s from %d tiles", outputPath, len(inputs))
	return nil
}
