package tabgenie

import (
	"context"
	"strconv"
)

// ExportFile is one exported artifact.
type ExportFile struct {
	Name string
	Data []byte
}

// ExportStore persists exported files. Files become visible together on
// Commit; Abort discards everything saved since the store was created.
type ExportStore interface {
	Save(ctx context.Context, file *ExportFile) error
	Commit() error
	Abort() error
}

// NotesFrame lays out notes as a frame with dataset, split, table_idx and
// note columns.
func NotesFrame(notes []*Note) *Frame {
	f := &Frame{Columns: []string{"dataset", "split", "table_idx", "note"}}
	for _, n := range notes {
		f.Rows = append(f.Rows, []string{n.Key.Dataset, n.Key.Split, strconv.Itoa(n.Key.Index), n.Text})
	}
	return f
}
