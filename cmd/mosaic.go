package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"landcover-tools/maskio"
)

var mosaicOutputFile string
var skipExistent bool

// mosaicCmd represents the mosaic command
var mosaicCmd = &cobra.Command{
	Use:   "mosaic [opts] mask_file...",
	Short: "Stitch per-tile landcover masks into a single raster",
	Long: `Merge landcover masks produced per tile into one GeoTIFF, using
	nearest resampling so class codes survive intact.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevels()

		if err := maskio.Mosaic(args, mosaicOutputFile, viper.GetBool("skipExistent")); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(mosaicCmd)

	mosaicCmd.Flags().StringVarP(&mosaicOutputFile, "output-file", "o", "", "Output mosaic GeoTIFF")
	if err := mosaicCmd.MarkFlagRequired("output-file"); err != nil {
		logrus.Exit(1)
	}

	mosaicCmd.Flags().BoolVar(&skipExistent, "skip-if-existent", false, "Skip when the output file already exists")
	if err := viper.BindPFlag("skipExistent", mosaicCmd.Flags().Lookup("skip-if-existent")); err != nil {
		logrus.Exit(1)
	}
}
