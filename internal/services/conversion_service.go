package services

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/crxtools/go-crx/internal/config"
	"github.com/crxtools/go-crx/internal/interfaces"
	"github.com/crxtools/go-crx/internal/parsers/crx"
)

// ConversionService turns CRX container files into zip archives or
// extracted directory trees. It owns the file I/O around the decoder;
// the decoder itself never touches the filesystem.
type ConversionService struct {
	config    *config.Config
	extractor interfaces.ArchiveExtractor
}

// NewConversionService creates a ConversionService with the given
// configuration
func NewConversionService(cfg *config.Config) *ConversionService {
	return &ConversionService{
		config:    cfg,
		extractor: NewExtractionService(),
	}
}

// ListArchives returns the sorted paths of regular files in dir whose
// extension matches the configured container extension
func (s *ConversionService) ListArchives(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), s.config.FileExtension) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// ConvertFile decodes the container at crxPath and writes its payload
// as a zip file under the configured output directory. Returns the
// path of the written archive.
func (s *ConversionService) ConvertFile(crxPath string) (string, error) {
	data, err := os.ReadFile(crxPath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", crxPath, err)
	}

	extension, err := crx.Parse(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", crxPath, err)
	}

	if err := os.MkdirAll(s.config.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	outPath := filepath.Join(s.config.OutputDir, fileStem(crxPath)+".zip")
	if !s.config.OverwriteExisting {
		if _, err := os.Stat(outPath); err == nil {
			// Keep the existing archive; derive a fresh name instead.
			outPath = filepath.Join(s.config.OutputDir, fmt.Sprintf("%s-%s.zip", fileStem(crxPath), uuid.NewString()[:8]))
		}
	}

	if err := os.WriteFile(outPath, extension.Zip, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}

	return outPath, nil
}

// ExtractFile decodes the container at crxPath and unpacks its payload
// into <destBase>/<stem>/, replacing any previous extraction of the
// same container. Returns the extraction directory.
func (s *ConversionService) ExtractFile(crxPath, destBase string) (string, error) {
	data, err := os.ReadFile(crxPath)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", crxPath, err)
	}

	extension, err := crx.Parse(data)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", crxPath, err)
	}

	if err := os.MkdirAll(destBase, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	extractDir := filepath.Join(destBase, fileStem(crxPath))
	if err := os.RemoveAll(extractDir); err != nil {
		return "", fmt.Errorf("removing previous extraction: %w", err)
	}
	if err := os.MkdirAll(extractDir, 0o755); err != nil {
		return "", fmt.Errorf("creating extraction directory: %w", err)
	}

	if _, err := s.extractor.ExtractArchive(extension.Zip, extractDir); err != nil {
		return "", err
	}

	return extractDir, nil
}

// fileStem returns the base name of path without its extension
func fileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
