package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var accountFlag string
var debugFlag bool
var jsonFlag bool

var rootCmd = &cobra.Command{
	Use:   "twx",
	Short: "Twitter API CLI",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		loadDotenvBestEffort()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&accountFlag, "account", "", "Account name from config.yaml")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Log requests to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Always print JSON")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
