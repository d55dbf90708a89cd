package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const noBrixTomlMessage = "no brix.toml found\nplease specify the dataset files explicitly, e.g.:\n  brix check data/a.csv data/b.csv"

type datasetManifest struct {
	Path   string
	Root   string
	Config datasetConfig
}

type datasetConfig struct {
	Dataset datasetSection `toml:"dataset"`
}

type datasetSection struct {
	Name  string   `toml:"name"`
	Files []string `toml:"files"`
}

func findBrixToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "brix.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadDatasetManifest(startDir string) (*datasetManifest, bool, error) {
	manifestPath, ok, err := findBrixToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg datasetConfig
	if _, err := toml.DecodeFile(manifestPath, &cfg); err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", manifestPath, err)
	}
	root := filepath.Dir(manifestPath)
	return &datasetManifest{
		Path:   manifestPath,
		Root:   root,
		Config: cfg,
	}, true, nil
}

// resolveFiles turns manifest-relative file entries into absolute paths.
func (m *datasetManifest) resolveFiles() []string {
	files := make([]string, 0, len(m.Config.Dataset.Files))
	for _, f := range m.Config.Dataset.Files {
		if !filepath.IsAbs(f) {
			f = filepath.Join(m.Root, f)
		}
		files = append(files, f)
	}
	return files
}
