package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ryn-cx/devious-schema/pkg/sample"
)

// ExpandFolder lists the sample documents directly inside a directory as file
// sources, in lexical order for deterministic merging. JSON and YAML
// extensions are recognised; everything else is skipped. A missing or
// non-directory path fails with an error naming it.
func ExpandFolder(folder string) ([]sample.Source, error) {
	if folder == "" {
		return nil, errors.New("sample loader: folder path is required")
	}

	stat, err := os.Stat(folder)
	if err != nil || !stat.IsDir() {
		return nil, fmt.Errorf("sample loader: %q does not exist or is not a directory", folder)
	}

	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("sample loader: read %q: %w", folder, err)
	}

	var sources []sample.Source
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".json", ".yaml", ".yml":
			sources = append(sources, sample.SourceFromFile(filepath.Join(folder, entry.Name())))
		}
	}
	return sources, nil
}
