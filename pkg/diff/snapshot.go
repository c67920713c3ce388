// Package diff reports what an external generator changed in a directory.
package diff

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// maxSnapshotFileSize bounds how much of a single file is kept in memory.
const maxSnapshotFileSize = 1 << 20

// skippedDirs are build output folders that generators never write to.
var skippedDirs = map[string]bool{
	"bin":          true,
	"obj":          true,
	"node_modules": true,
}

// FileState is the content of one regular file at snapshot time. Files
// over maxSnapshotFileSize keep only their size and sha256.
type FileState struct {
	Content   string
	Truncated bool
	Size      int64
	Sum       string
}

// Snapshot maps slash-separated paths relative to the root to file states.
type Snapshot map[string]FileState

// TakeSnapshot walks root on fs and records every regular file, skipping
// build output and hidden directories.
func TakeSnapshot(fs afero.Fs, root string) (Snapshot, error) {
	snap := Snapshot{}
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != root && (skippedDirs[info.Name()] || strings.HasPrefix(info.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		state := FileState{Size: info.Size()}
		if info.Size() > maxSnapshotFileSize {
			sum, err := fileSum(fs, path)
			if err != nil {
				return err
			}
			state.Truncated = true
			state.Sum = sum
		} else {
			content, err := afero.ReadFile(fs, path)
			if err != nil {
				return err
			}
			state.Content = string(content)
		}
		snap[filepath.ToSlash(rel)] = state
		return nil
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func fileSum(fs afero.Fs, path string) (string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("error hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Paths returns the snapshot's paths in lexical order.
func (s Snapshot) Paths() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
