// Entry point for the a11yscan CLI: `serve` runs the HTTP analysis service,
// `scan` analyzes one page and renders the report.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "a11yscan",
	Short: "HTML accessibility analyzer",
	Long:  "a11yscan checks HTML documents for accessibility issues:\nmissing labels, poor color contrast, missing ARIA semantics, and more.",
}

func main() {
	rootCmd.Version = version
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scanCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
