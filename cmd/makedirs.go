package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"landcover-tools/products"
)

var makedirsRoot string

// makedirsCmd represents the makedirs command
var makedirsCmd = &cobra.Command{
	Use:   "makedirs product_file...",
	Short: "Group HLS product files into date/tile directories",
	Long: `Move downloaded HLS granule files into a YYYY-MM-DD/tile directory
	layout derived from their file names, creating directories as needed,
	and report the tiles found per acquisition date.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevels()

		groups, err := products.Reorganize(args, makedirsRoot)
		if err != nil {
			logrus.Fatal(err)
		}
		for date, tiles := range groups {
			fmt.Println(date, len(tiles), tiles)
		}
	},
}

func init() {
	rootCmd.AddCommand(makedirsCmd)

	makedirsCmd.Flags().StringVar(&makedirsRoot, "root", ".", "Directory to build the date/tile layout under")
}
