package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/grindlemire/go-boxlayout/internal/tree"
)

// isDocument reports whether path has a document extension.
func isDocument(path string) bool {
	_, err := tree.FormatFromPath(path)
	return err == nil
}

// collectDocuments expands paths into document files. A directory contributes
// its own documents; a path ending in /... contributes every document below it.
func collectDocuments(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && isDocument(p) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && isDocument(entry.Name()) {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
			continue
		}
		// Named files are taken as given so a bad extension is reported.
		files = append(files, path)
	}

	return files, nil
}
