package main

import (
	"os"

	"github.com/duopool/duopool/cmd/duopool/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
