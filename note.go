package tabgenie

import (
	"context"
	"time"
)

// Note is a free-text annotation attached to a table.
type Note struct {
	ID        string    `json:"id"`
	Key       TableKey  `json:"key"`
	Text      string    `json:"note"`
	TableHash string    `json:"tableHash,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the note contains invalid fields.
func (n *Note) Validate() error {
	if err := n.Key.Validate(); err != nil {
		return err
	}
	if n.Text == "" {
		return Errorf(EINVALID, "note text required")
	}
	return nil
}

// NoteService manages notes. A table has at most one note.
type NoteService interface {
	// SetNote creates or replaces the note of the table. An empty text
	// removes the note.
	SetNote(ctx context.Context, key TableKey, text, tableHash string) (*Note, error)

	// FindNote returns the note of the table.
	// Returns ENOTFOUND if the table has no note.
	FindNote(ctx context.Context, key TableKey) (*Note, error)

	// FindNotes returns notes matching the filter ordered by key.
	FindNotes(ctx context.Context, filter NoteFilter) ([]*Note, error)

	// DeleteAllNotes removes every note.
	DeleteAllNotes(ctx context.Context) error
}

// NoteFilter represents a filter for FindNotes.
type NoteFilter struct {
	Dataset *string `json:"dataset"`
	Split   *string `json:"split"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Favourite marks a table for later export.
type Favourite struct {
	ID        string    `json:"id"`
	Key       TableKey  `json:"key"`
	CreatedAt time.Time `json:"createdAt"`
}

// FavouriteService manages favourite tables.
type FavouriteService interface {
	// AddFavourite marks the table. Adding an existing favourite is a no-op.
	AddFavourite(ctx context.Context, key TableKey) (*Favourite, error)

	// RemoveFavourite unmarks the table.
	// Returns ENOTFOUND if the table is not a favourite.
	RemoveFavourite(ctx context.Context, key TableKey) error

	// FindFavourites returns all favourites ordered by creation.
	FindFavourites(ctx context.Context) ([]*Favourite, error)

	// DeleteAllFavourites removes every favourite.
	DeleteAllFavourites(ctx context.Context) error
}
