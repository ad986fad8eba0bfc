// Package fs provides file-based storage for exported tables.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/tabgenie"
)

// Ensure FileStore implements tabgenie.ExportStore at compile time.
var _ tabgenie.ExportStore = (*FileStore)(nil)

// FileStore implements tabgenie.ExportStore with atomic update semantics.
// Files are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

// Dir returns the directory holding committed files.
func (s *FileStore) Dir() string {
	return filepath.Join(s.baseDir, s.name)
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

// Save writes file into the temporary directory.
func (s *FileStore) Save(ctx context.Context, file *tabgenie.ExportFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	name, err := cleanName(file.Name)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), name)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, file.Data, 0644)
}

// Commit replaces the final directory with the saved files.
func (s *FileStore) Commit() error {
	if err := os.RemoveAll(s.Dir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.Dir())
}

// Abort removes the saved files.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

// cleanName rejects names escaping the store directory.
func cleanName(name string) (string, error) {
	clean := filepath.Clean(name)
	if name == "" || filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", tabgenie.Errorf(tabgenie.EINVALID, "invalid export file name %q", name)
	}
	return clean, nil
}
