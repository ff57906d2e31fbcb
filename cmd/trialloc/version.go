package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/trialloc"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of trialloc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("trialloc version %s\n", trialloc.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
