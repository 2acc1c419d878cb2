package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crxtools/go-crx/internal/services"
)

var extractCmd = &cobra.Command{
	Use:   "extract [container.crx]",
	Short: "Unpack a container's payload into a directory",
	Long: `Decode a CRX container and unpack its inner archive into
<output-dir>/<name>/. A previous extraction of the same container is
replaced.

Examples:
  uncrx extract extension.crx
  uncrx extract extension.crx --output-dir ./unpacked`,

	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExtract(args[0]); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := requireContainerFile(path, cfg); err != nil {
		return err
	}

	service := services.NewConversionService(cfg)
	extractDir, err := service.ExtractFile(path, cfg.OutputDir)
	if err != nil {
		return err
	}

	fmt.Printf("Successfully extracted %s to %s\n", path, extractDir)
	return nil
}
