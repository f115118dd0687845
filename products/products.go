// Package products handles HLS granule file names and the on-disk layout
// that groups downloaded products by acquisition date and tile.
package products

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Product identifies one HLS granule file.
type Product struct {
	Path string
	Tile string
	Date time.Time
}

// ParseProductName extracts the tile and sensing date from an HLS granule
// name such as HLS.S30.T15SXR.2021250T163901.v2.0.B04.tif: the third
// dot-field is the tile, the fourth starts with the date as year plus
// day-of-year.
func ParseProductName(path string) (Product, error) {
	fields := strings.Split(filepath.Base(path), ".")
	if len(fields) < 4 {
		return Product{}, fmt.Errorf("not an HLS product name: %s", path)
	}
	tile := fields[2]
	stamp, _, _ := strings.Cut(fields[3], "T")
	date, err := time.Parse("2006002", stamp)
	if err != nil {
		return Product{}, fmt.Errorf("bad sensing date in %s: %w", path, err)
	}
	return Product{Path: path, Tile: tile, Date: date}, nil
}

// DateDir is the directory one product file belongs under, relative to the
// collection root: YYYY-MM-DD/tile.
func (p Product) DateDir() string {
	return filepath.Join(p.Date.Format("2006-01-02"), p.Tile)
}

// Reorganize moves product files under root into date/tile directories,
// creating them as needed, and returns the tiles seen per date.
func Reorganize(paths []string, root string) (map[string][]string, error) {
	groups := make(map[string][]string)
	for _, path := range paths {
		product, err := ParseProductName(path)
		if err != nil {
			return nil, err
		}

		dir := filepath.Join(root, product.DateDir())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
		dst := filepath.Join(dir, filepath.Base(path))
		if err := os.Rename(path, dst); err != nil {
			return nil, err
		}
		logrus.Debugf("%s -> %s", path, dst)

		date := product.Date.Format("2006-01-02")
		if !contains(groups[date], product.Tile) {
			groups[date] = append(groups[date], product.Tile)
		}
	}
	for _, tiles := range groups {
		sort.Strings(tiles)
	}
	return groups, nil
}

func contains(tiles []string, tile string) bool {
	for _, t := range tiles {
		if t == tile {
			return true
		}
	}
	return false
}
