package services

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"

	"github.com/crxtools/go-crx/internal/interfaces"
)

// extractionService implements the ArchiveExtractor interface
type extractionService struct{}

// NewExtractionService creates a new ArchiveExtractor implementation
func NewExtractionService() interfaces.ArchiveExtractor {
	return &extractionService{}
}

// ExtractArchive unpacks a zip archive payload under destDir and
// returns the number of files written. Entries whose names escape
// destDir (absolute paths or ".." traversal) are skipped rather than
// failing the whole extraction.
func (s *extractionService) ExtractArchive(zipData []byte, destDir string) (int, error) {
	reader, err := zip.NewReader(bytes.NewReader(zipData), int64(len(zipData)))
	if err != nil {
		return 0, fmt.Errorf("payload is not a valid zip archive: %w", err)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating destination directory: %w", err)
	}

	written := 0
	for _, file := range reader.File {
		outPath, ok := entryPath(destDir, file.Name)
		if !ok {
			continue
		}

		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(outPath, 0o755); err != nil {
				return written, fmt.Errorf("creating directory %s: %w", file.Name, err)
			}
			continue
		}

		if err := writeEntry(file, outPath); err != nil {
			return written, fmt.Errorf("extracting %s: %w", file.Name, err)
		}
		written++
	}

	return written, nil
}

// entryPath resolves an archive entry name under destDir, rejecting
// names that would land outside it
func entryPath(destDir, name string) (string, bool) {
	if name == "" || filepath.IsAbs(name) || !filepath.IsLocal(filepath.FromSlash(name)) {
		return "", false
	}
	return filepath.Join(destDir, filepath.FromSlash(name)), true
}

// writeEntry copies one archive member to disk, creating parent
// directories as needed
func writeEntry(file *zip.File, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	source, err := file.Open()
	if err != nil {
		return err
	}
	defer source.Close()

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, source); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
