// Package jsonl reads dataset splits stored as JSON Lines files.
package jsonl

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/tabgenie"
)

var _ tabgenie.EntrySource = (*Source)(nil)

// Extension is the file extension of split files.
const Extension = ".jsonl"

// Source reads entries from <dir>/<dataset>/<split>.jsonl, one JSON value
// per line. Blank lines are skipped.
type Source struct {
	dir string

	// MaxExamples caps the number of entries read per split. Zero reads
	// everything.
	MaxExamples int
}

// NewSource creates a Source rooted at dir.
func NewSource(dir string, maxExamples int) *Source {
	return &Source{dir: dir, MaxExamples: maxExamples}
}

// Path returns the file holding a split.
func (s *Source) Path(dataset, split string) string {
	return filepath.Join(s.dir, dataset, split+Extension)
}

// Entries returns the entries of a split in file order.
// Returns ENOTFOUND if the split file does not exist and EMALFORMED if a
// line is not valid JSON.
func (s *Source) Entries(ctx context.Context, dataset, split string) ([]tabgenie.Entry, error) {
	if !tabgenie.ValidSplit(split) {
		return nil, tabgenie.Errorf(tabgenie.EINVALID, "unknown split %q", split)
	}

	f, err := os.Open(s.Path(dataset, split))
	if errors.Is(err, os.ErrNotExist) {
		return nil, tabgenie.Errorf(tabgenie.ENOTFOUND, "split %s/%s not found", dataset, split)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []tabgenie.Entry
	r := bufio.NewReader(f)
	for line := 1; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if s.MaxExamples > 0 && len(entries) >= s.MaxExamples {
			break
		}

		b, err := r.ReadBytes('\n')
		if trimmed := bytes.TrimSpace(b); len(trimmed) > 0 {
			if !json.Valid(trimmed) {
				return nil, tabgenie.Errorf(tabgenie.EMALFORMED, "%s/%s line %d: invalid JSON", dataset, split, line)
			}
			entries = append(entries, tabgenie.Entry(bytes.Clone(trimmed)))
		}
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}
	}
	return entries, nil
}

// Splits returns the splits of dataset that have a file, in display order.
func (s *Source) Splits(dataset string) []string {
	var splits []string
	for _, split := range tabgenie.Splits {
		if _, err := os.Stat(s.Path(dataset, split)); err == nil {
			splits = append(splits, split)
		}
	}
	return splits
}
