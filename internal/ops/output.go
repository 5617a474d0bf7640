// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/pdf-workbench/pkg/types"
)

// ArchiveName returns the file name used when split output is packaged.
func (r *Runner) ArchiveName() string {
	return "split_" + r.dateStamp() + ".zip"
}

// WriteArchive packages arts into a zip archive written to w. Entries keep
// the artifact order and names.
func (r *Runner) WriteArchive(w io.Writer, arts []types.Artifact) error {
	zw := zip.NewWriter(w)
	mod := r.now()
	for _, a := range arts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     a.Name,
			Method:   zip.Deflate,
			Modified: mod,
		})
		if err != nil {
			zw.Close()
			return fmt.Errorf("archive entry %s: %w", a.Name, err)
		}
		if _, err := fw.Write(a.Data); err != nil {
			zw.Close()
			return fmt.Errorf("archive entry %s: %w", a.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}
	return nil
}

// WriteDir writes each artifact into dir, creating dir if needed, and
// returns the written paths. Files appear atomically; a failure removes
// the artifacts already written by this call.
func WriteDir(dir string, arts []types.Artifact) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	paths := make([]string, 0, len(arts))
	for _, a := range arts {
		dest := filepath.Join(dir, filepath.Base(a.Name))
		if err := writeAtomic(dest, a.Data); err != nil {
			for _, p := range paths {
				os.Remove(p)
			}
			return nil, err
		}
		paths = append(paths, dest)
	}
	return paths, nil
}

// WriteFile writes data to dir/name atomically and returns the path.
func WriteFile(dir, name string, data []byte) (string, error) {
	paths, err := WriteDir(dir, []types.Artifact{{Name: name, Data: data}})
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

func writeAtomic(destPath string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".pdf-workbench-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", filepath.Base(destPath), writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
