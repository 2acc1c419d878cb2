package cmd

import (
	"github.com/spf13/cobra"

	"github.com/crxtools/go-crx/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [directory]",
	Short: "Browse and convert containers interactively",
	Long: `Launch an interactive terminal browser over the container files in
a directory (default: the current directory). Selecting a file
converts it to a zip archive in the output directory.

Examples:
  uncrx tui
  uncrx tui ./downloads --output-dir ./archives`,

	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		if err := runTui(dir); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTui(dir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return tui.Run(dir, cfg)
}
