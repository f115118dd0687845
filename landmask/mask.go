package landmask

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/airbusgeo/godal"
	"github.com/sirupsen/logrus"
)

// MaskConfig names the inputs of one mask run. The scratch directory holds
// the intermediate warped rasters and is owned by the run for its duration.
type MaskConfig struct {
	ReferencePath  string // sensor product whose grid the mask is built on
	LandcoverPath  string // Copernicus discrete classification, 100 m
	WorldcoverPath string // ESA WorldCover, 10 m
	ScratchDir     string
	Profiles       []Profile
}

// SinkFunc consumes one finished classification per profile. The caller
// decides where each mask is written.
type SinkFunc func(mask *RasterLayer, profile Profile) error

// CreateMask runs the full pipeline: resolve the target grid from the
// reference product, align both landcover sources onto it, extract and
// aggregate the class indicators, filter the tree counts by the evergreen
// classification, then classify and emit one mask per requested profile.
func CreateMask(cfg MaskConfig, sink SinkFunc) error {
	godal.RegisterAll()
	start := time.Now()

	for _, path := range []string{cfg.ReferencePath, cfg.LandcoverPath, cfg.WorldcoverPath} {
		if _, err := os.Stat(path); err != nil {
			logrus.Errorf("ERROR file not found: %s", path)
			return fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
	}
	if err := os.MkdirAll(cfg.ScratchDir, 0o755); err != nil {
		return fmt.Errorf("scratch dir: %w", err)
	}

	logrus.Infof("Input file: %s", cfg.ReferencePath)
	logrus.Infof("Copernicus landcover 100 m file: %s", cfg.LandcoverPath)
	logrus.Infof("World cover 10 m file: %s", cfg.WorldcoverPath)

	ref, err := ResolveGrid(cfg.ReferencePath)
	if err != nil {
		return err
	}
	target := ref.WithResolution(TargetResolution)
	fine := ref.WithResolution(FineResolution)
	logrus.Debugf("Target grid %dx%d at %gm", target.Cols, target.Rows, target.DX)

	copernicus, err := Align(cfg.LandcoverPath, target, ResampleNearest,
		filepath.Join(cfg.ScratchDir, "copernicus_reproject_30m.tif"))
	if err != nil {
		return err
	}
	worldcover, err := Align(cfg.WorldcoverPath, fine, ResampleNearest,
		filepath.Join(cfg.ScratchDir, "worldcover_reproject_10m.tif"))
	if err != nil {
		return err
	}

	// WorldCover codes: 80/90 open water and herbaceous wetland, 50 built-up,
	// 10 tree cover.
	water := ExtractIndicator(worldcover, In(80, 90))
	urban := ExtractIndicator(worldcover, Is(50))
	tree := ExtractIndicator(worldcover, Is(10))

	waterCounts, err := AggregateSum(water, target, cfg.ScratchDir, "water")
	if err != nil {
		return err
	}
	urbanCounts, err := AggregateSum(urban, target, cfg.ScratchDir, "urban")
	if err != nil {
		return err
	}
	treeCounts, err := AggregateSum(tree, target, cfg.ScratchDir, "tree")
	if err != nil {
		return err
	}

	treeCounts, err = FilterWhereEqual(treeCounts, copernicus, EvergreenBroadleaf)
	if err != nil {
		return err
	}

	for _, profile := range cfg.Profiles {
		logrus.Infof("Classifying with %q thresholds", profile)
		mask, err := Classify(target, profile.Rules(treeCounts, urbanCounts, waterCounts))
		if err != nil {
			return err
		}
		if err := sink(mask, profile); err != nil {
			return err
		}
	}

	logrus.Infof("Total time: %.2f seconds", time.Since(start).Seconds())
	return nil
}
