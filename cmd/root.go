package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global output flags only
	verbose   bool
	outputDir string
)

var rootCmd = &cobra.Command{
	Use:   "uncrx",
	Short: "Decode CRX extension containers",
	Long: `uncrx decodes browser-extension containers (CRX files) into their
structural parts: format version, embedded public key, optional
signature, and the inner zip archive.

Commands:
  inspect     Show the decoded header fields of a container
  convert     Write a container's payload as a zip archive
  extract     Unpack a container's payload into a directory
  tui         Browse and convert containers interactively`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "", "output directory (overrides configured default)")
}
