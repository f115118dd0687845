/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Verbose bool
var Debug bool
var logFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "landcover-tools",
	Short: "Tools for building hierarchical landcover masks over sensor grids",
	Long: `Build a hierarchical landcover mask by combining the Copernicus
	Global Land Service discrete classification (100m) with ESA WorldCover
	(10m) over an HLS product grid:
	./landcover-tools mask [opts] [hls_product]

	Supporting utilities: 'makedirs' groups downloaded products by date and
	tile, 'mosaic' stitches per-tile masks, 'ctable' appends a display
	color table.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func setLogLevels() {
	if viper.GetBool("debug") {
		logrus.SetLevel(logrus.DebugLevel)
	} else if viper.GetBool("verbose") {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	if logFile == "" {
		return
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logrus.Error(err)
		return
	}
	logrus.SetOutput(f)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "Verbose output")
	err := viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	if err != nil {
		logrus.Exit(1)
	}
	rootCmd.PersistentFlags().BoolVarP(&Debug, "debug", "d", false, "Debug output")
	err = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	if err != nil {
		logrus.Exit(1)
	}
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Log file")
	err = viper.BindPFlag("logFile", rootCmd.PersistentFlags().Lookup("log-file"))
	if err != nil {
		logrus.Exit(1)
	}
}
