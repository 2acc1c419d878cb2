package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crxtools/go-crx/internal/services"
)

var convertCmd = &cobra.Command{
	Use:   "convert [container.crx]",
	Short: "Write a container's payload as a zip archive",
	Long: `Decode a CRX container and write its inner archive as a .zip file
in the output directory.

Examples:
  uncrx convert extension.crx
  uncrx convert extension.crx --output-dir ./archives`,

	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConvert(args[0]); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := requireContainerFile(path, cfg); err != nil {
		return err
	}

	service := services.NewConversionService(cfg)
	outPath, err := service.ConvertFile(path)
	if err != nil {
		return err
	}

	fmt.Printf("Successfully converted %s to %s\n", path, outPath)
	return nil
}
