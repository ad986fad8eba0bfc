package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/tabgenie"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ tabgenie.NoteService = (*NoteService)(nil)

// NoteService implements tabgenie.NoteService using SQLite.
type NoteService struct {
	db *DB
}

// NewNoteService creates a new NoteService.
func NewNoteService(db *DB) *NoteService {
	return &NoteService{db: db}
}

// SetNote creates or replaces the note of a table. An empty text removes
// the note and returns nil.
func (s *NoteService) SetNote(ctx context.Context, key tabgenie.TableKey, text, tableHash string) (*tabgenie.Note, error) {
	if text == "" {
		if err := key.Validate(); err != nil {
			return nil, err
		}
		_, err := s.db.ExecContext(ctx, `
			DELETE FROM notes WHERE dataset = ? AND split = ? AND table_idx = ?
		`, key.Dataset, key.Split, key.Index)
		return nil, err
	}

	note := &tabgenie.Note{Key: key, Text: text, TableHash: tableHash}
	if err := note.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.FindNote(ctx, key)
	switch {
	case err == nil:
		note.ID = existing.ID
		note.CreatedAt = existing.CreatedAt
	case tabgenie.ErrorCode(err) == tabgenie.ENOTFOUND:
		note.ID = uuid.New().String()
		note.CreatedAt = time.Now().UTC()
	default:
		return nil, err
	}
	note.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO notes (id, dataset, split, table_idx, note, table_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (dataset, split, table_idx) DO UPDATE SET
			note = excluded.note,
			table_hash = excluded.table_hash,
			updated_at = excluded.updated_at
	`, note.ID, key.Dataset, key.Split, key.Index, note.Text, note.TableHash,
		formatTime(note.CreatedAt), formatTime(note.UpdatedAt))
	if err != nil {
		return nil, err
	}

	return note, nil
}

// FindNote retrieves the note of a table.
func (s *NoteService) FindNote(ctx context.Context, key tabgenie.TableKey) (*tabgenie.Note, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, dataset, split, table_idx, note, table_hash, created_at, updated_at
		FROM notes
		WHERE dataset = ? AND split = ? AND table_idx = ?
	`, key.Dataset, key.Split, key.Index)

	note, err := scanNote(row)
	if err == sql.ErrNoRows {
		return nil, tabgenie.Errorf(tabgenie.ENOTFOUND, "note for %s not found", key)
	}
	return note, err
}

// FindNotes retrieves notes matching the filter.
func (s *NoteService) FindNotes(ctx context.Context, filter tabgenie.NoteFilter) ([]*tabgenie.Note, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, dataset, split, table_idx, note, table_hash, created_at, updated_at FROM notes WHERE 1=1")

	if filter.Dataset != nil {
		query.WriteString(" AND dataset = ?")
		args = append(args, *filter.Dataset)
	}
	if filter.Split != nil {
		query.WriteString(" AND split = ?")
		args = append(args, *filter.Split)
	}

	query.WriteString(" ORDER BY dataset, split, table_idx")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*tabgenie.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, rows.Err()
}

// DeleteAllNotes removes every note.
func (s *NoteService) DeleteAllNotes(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM notes")
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (*tabgenie.Note, error) {
	var note tabgenie.Note
	var createdAt, updatedAt string

	if err := row.Scan(&note.ID, &note.Key.Dataset, &note.Key.Split, &note.Key.Index,
		&note.Text, &note.TableHash, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if note.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if note.UpdatedAt, err = parseTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &note, nil
}
