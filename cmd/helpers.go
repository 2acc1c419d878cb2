package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/crxtools/go-crx/internal/config"
)

// loadConfig resolves tool configuration and applies the --output-dir
// override on top of it
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if outputDir != "" {
		cfg.OutputDir = outputDir
	}
	return cfg, nil
}

// requireContainerFile rejects paths without the configured container
// extension or that do not exist, before any bytes are read
func requireContainerFile(path string, cfg *config.Config) error {
	if !strings.EqualFold(filepath.Ext(path), cfg.FileExtension) {
		return fmt.Errorf("unsupported file type %q: only %s files are supported", filepath.Ext(path), cfg.FileExtension)
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s not found", path)
		}
		return err
	}
	return nil
}
