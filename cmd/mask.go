// Package cmd /*
package cmd

import (
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"landcover-tools/landmask"
	"landcover-tools/maskio"
)

var landcoverFile string
var worldcoverFile string
var maskOutputFile string
var maskType string
var scratchDir string
var summaryFile string

// maskCmd represents the mask command
var maskCmd = &cobra.Command{
	Use:   "mask [opts] hls_product",
	Short: "Create a hierarchical landcover mask over an HLS product grid",
	Long: `Combine the Copernicus Global Land Service discrete classification
	at 100m with ESA WorldCover at 10m into a single landcover mask aligned
	to the grid of the given HLS product, at 30m.

	WorldCover water, urban and tree pixels are counted per 30m cell and the
	counts resolved by an ordered threshold hierarchy; tree counts only apply
	inside cells the Copernicus layer classifies as evergreen broadleaf.

	Options:
		--mask-type:    "standard", "water heavy", or "batch" to run both.
		--scratch-dir:  Directory for intermediate warped rasters, created if
										absent. A run owns its scratch directory.
		--summary:      Also write the per-class cell distribution, as parquet
										or (with a .csv suffix) CSV.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevels()

		profiles, err := landmask.ParseProfiles(viper.GetString("maskType"))
		if err != nil {
			logrus.Fatal(err)
		}
		batch := len(profiles) > 1

		sink := func(mask *landmask.RasterLayer, profile landmask.Profile) error {
			if err := maskio.WriteGeoTIFF(mask, profilePath(maskOutputFile, profile, batch)); err != nil {
				return err
			}
			if summaryFile == "" {
				return nil
			}
			rows := maskio.Summarize(mask)
			path := profilePath(summaryFile, profile, batch)
			if strings.EqualFold(filepath.Ext(path), ".csv") {
				return maskio.WriteSummaryCSV(rows, path)
			}
			return maskio.WriteSummaryParquet(rows, path)
		}

		cfg := landmask.MaskConfig{
			ReferencePath:  args[0],
			LandcoverPath:  landcoverFile,
			WorldcoverPath: worldcoverFile,
			ScratchDir:     scratchDir,
			Profiles:       profiles,
		}
		if err := landmask.CreateMask(cfg, sink); err != nil {
			logrus.Fatal(err)
		}
	},
}

// profilePath inserts the profile slug before the extension when running
// both profiles, so batch mode never overwrites its own output.
func profilePath(base string, profile landmask.Profile, batch bool) string {
	if !batch {
		return base
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "_" + profile.Slug() + ext
}

func init() {
	rootCmd.AddCommand(maskCmd)

	maskCmd.Flags().StringVarP(&landcoverFile, "landcover", "c", "", "Input Copernicus Land Cover Discrete-Classification-map 100m")
	if err := maskCmd.MarkFlagRequired("landcover"); err != nil {
		logrus.Exit(1)
	}

	maskCmd.Flags().StringVarP(&worldcoverFile, "worldcover", "w", "", "Input ESA WorldCover 10m")
	if err := maskCmd.MarkFlagRequired("worldcover"); err != nil {
		logrus.Exit(1)
	}

	maskCmd.Flags().StringVarP(&maskOutputFile, "output-file", "o", "", "Output landcover mask (GeoTIFF) over the input HLS product grid")
	if err := maskCmd.MarkFlagRequired("output-file"); err != nil {
		logrus.Exit(1)
	}

	maskCmd.Flags().StringVar(&maskType, "mask-type", "standard", `Options: "standard", "water heavy", or "batch"`)
	if err := viper.BindPFlag("maskType", maskCmd.Flags().Lookup("mask-type")); err != nil {
		logrus.Exit(1)
	}

	maskCmd.Flags().StringVar(&scratchDir, "scratch-dir", ".", "Scratch (temporary) directory")
	if err := viper.BindPFlag("scratchDir", maskCmd.Flags().Lookup("scratch-dir")); err != nil {
		logrus.Exit(1)
	}

	maskCmd.Flags().StringVar(&summaryFile, "summary", "", "Also write the per-class cell distribution (parquet, or CSV with a .csv suffix)")
	if err := viper.BindPFlag("summary", maskCmd.Flags().Lookup("summary")); err != nil {
		logrus.Exit(1)
	}
}
