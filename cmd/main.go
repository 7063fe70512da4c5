package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ai-analyzer",
	Short: "A CLI for managing the AI Investment Analyzer services",
	Long:  `AI Investment Analyzer evaluates the AI potential of public companies and 401k benefit plans...`,
}

func main() {

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
