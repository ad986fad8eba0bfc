package tabgenie

import (
	"context"
	"fmt"
)

// Dataset splits.
const (
	SplitTrain = "train"
	SplitDev   = "dev"
	SplitTest  = "test"
)

// Splits lists the supported splits in display order.
var Splits = []string{SplitTrain, SplitDev, SplitTest}

// ValidSplit reports whether s names a supported split.
func ValidSplit(s string) bool {
	for _, split := range Splits {
		if s == split {
			return true
		}
	}
	return false
}

// Entry is one raw dataset record as stored in the source file. Only the
// adapter of the dataset knows its shape.
type Entry []byte

// TableKey identifies a table by dataset, split and position in the split.
type TableKey struct {
	Dataset string `json:"dataset"`
	Split   string `json:"split"`
	Index   int    `json:"table_idx"`
}

// Validate returns an error if the key contains invalid fields.
func (k TableKey) Validate() error {
	if k.Dataset == "" {
		return Errorf(EINVALID, "dataset required")
	}
	if !ValidSplit(k.Split) {
		return Errorf(EINVALID, "unknown split %q", k.Split)
	}
	if k.Index < 0 {
		return Errorf(EINVALID, "negative table index %d", k.Index)
	}
	return nil
}

// String returns the key in dataset-split-index form.
func (k TableKey) String() string {
	return fmt.Sprintf("%s-%s-%d", k.Dataset, k.Split, k.Index)
}

// Filename returns the export file name of the table for the given
// extension.
func (k TableKey) Filename(ext string) string {
	return fmt.Sprintf("%s_%s_tab_%d.%s", k.Dataset, k.Split, k.Index, ext)
}

// DatasetInfo describes a registered dataset.
type DatasetInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Source      string         `json:"source,omitempty"`
	License     string         `json:"license,omitempty"`
	Task        string         `json:"task,omitempty"`
	Examples    map[string]int `json:"examples,omitempty"`
}

// TableBuilder turns raw entries of one dataset into tables.
type TableBuilder interface {
	// Info describes the dataset handled by the builder.
	Info() DatasetInfo

	// PrepareTable builds a fully constructed table from entry.
	// Returns EMALFORMED if required fields are missing.
	PrepareTable(entry Entry) (*Table, error)
}

// Registry maps dataset names to their table builders.
type Registry interface {
	// Builder returns the builder registered under name.
	// Returns ENOTFOUND if no such dataset exists.
	Builder(name string) (TableBuilder, error)

	// Names returns the registered dataset names in sorted order.
	Names() []string
}

// EntrySource reads raw entries of a dataset split.
type EntrySource interface {
	// Entries returns the entries of a split in file order.
	// Returns ENOTFOUND if the split is not available.
	Entries(ctx context.Context, dataset, split string) ([]Entry, error)
}
