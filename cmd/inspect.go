package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crxtools/go-crx/internal/parsers/crx"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [container.crx]",
	Short: "Show the decoded header fields of a container",
	Long: `Decode a CRX container and print its structural fields without
writing anything to disk.

Examples:
  uncrx inspect extension.crx
  uncrx inspect --verbose extension.crx`,

	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInspect(args[0]); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(path string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := requireContainerFile(path, cfg); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	reader, err := crx.NewCrxReader(data)
	if err != nil {
		return err
	}

	fmt.Printf("Container: %s\n", path)
	fmt.Printf("    Format version: %d\n", reader.FormatVersion())
	fmt.Printf("    Public key: %d bytes\n", len(reader.PublicKey()))
	if reader.HasSignature() {
		fmt.Printf("    Signature: %d bytes\n", len(reader.Signature()))
	} else {
		fmt.Println("    Signature: none")
	}
	fmt.Printf("    Payload: %d bytes\n", len(reader.Archive()))

	if verbose {
		fmt.Printf("    File size: %d bytes\n", len(data))
	}
	return nil
}
