package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ArchiveFile moves an existing output file into an "archive" directory next
// to it, adding a timestamp to its name. It returns the archived path, or ""
// when there was nothing to archive.
func ArchiveFile(path string) (string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat output file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("output path is a directory: %s", path)
	}

	archiveDir := filepath.Join(filepath.Dir(path), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	ext := filepath.Ext(path)
	base := strings.TrimSuffix(filepath.Base(path), ext)

	archivePath := filepath.Join(archiveDir, archiveName(base, ext, "20060102-150405"))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir, archiveName(base, ext, "20060102-150405.000000"))
	}

	if err := os.Rename(path, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive output file: %w", err)
	}

	return archivePath, nil
}

func archiveName(base, ext, layout string) string {
	return fmt.Sprintf("%s-%s%s", base, time.Now().Format(layout), ext)
}
