package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"landcover-tools/maskio"
)

var ctableOutputFile string

// ctableCmd represents the ctable command
var ctableCmd = &cobra.Command{
	Use:   "ctable [opts] mask_file",
	Short: "Append a display color table to a landcover mask",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevels()

		if err := maskio.AppendColorTable(args[0], ctableOutputFile); err != nil {
			logrus.Fatal(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(ctableCmd)

	ctableCmd.Flags().StringVarP(&ctableOutputFile, "output-file", "o", "", "Output GeoTIFF with appended color table")
	if err := ctableCmd.MarkFlagRequired("output-file"); err != nil {
		logrus.Exit(1)
	}
}
