package mock

import (
	"context"

	"github.com/fwojciec/tabgenie"
)

var _ tabgenie.ExportStore = (*ExportStore)(nil)

// ExportStore is a mock implementation of tabgenie.ExportStore.
type ExportStore struct {
	SaveFn   func(ctx context.Context, file *tabgenie.ExportFile) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ExportStore) Save(ctx context.Context, file *tabgenie.ExportFile) error {
	return s.SaveFn(ctx, file)
}

func (s *ExportStore) Commit() error {
	return s.CommitFn()
}

func (s *ExportStore) Abort() error {
	return s.AbortFn()
}

var _ tabgenie.NoteService = (*NoteService)(nil)

// NoteService is a mock implementation of tabgenie.NoteService.
type NoteService struct {
	SetNoteFn        func(ctx context.Context, key tabgenie.TableKey, text, tableHash string) (*tabgenie.Note, error)
	FindNoteFn       func(ctx context.Context, key tabgenie.TableKey) (*tabgenie.Note, error)
	FindNotesFn      func(ctx context.Context, filter tabgenie.NoteFilter) ([]*tabgenie.Note, error)
	DeleteAllNotesFn func(ctx context.Context) error
}

func (s *NoteService) SetNote(ctx context.Context, key tabgenie.TableKey, text, tableHash string) (*tabgenie.Note, error) {
	return s.SetNoteFn(ctx, key, text, tableHash)
}

func (s *NoteService) FindNote(ctx context.Context, key tabgenie.TableKey) (*tabgenie.Note, error) {
	return s.FindNoteFn(ctx, key)
}

func (s *NoteService) FindNotes(ctx context.Context, filter tabgenie.NoteFilter) ([]*tabgenie.Note, error) {
	return s.FindNotesFn(ctx, filter)
}

func (s *NoteService) DeleteAllNotes(ctx context.Context) error {
	return s.DeleteAllNotesFn(ctx)
}

var _ tabgenie.FavouriteService = (*FavouriteService)(nil)

// FavouriteService is a mock implementation of tabgenie.FavouriteService.
type FavouriteService struct {
	AddFavouriteFn        func(ctx context.Context, key tabgenie.TableKey) (*tabgenie.Favourite, error)
	RemoveFavouriteFn     func(ctx context.Context, key tabgenie.TableKey) error
	FindFavouritesFn      func(ctx context.Context) ([]*tabgenie.Favourite, error)
	DeleteAllFavouritesFn func(ctx context.Context) error
}

func (s *FavouriteService) AddFavourite(ctx context.Context, key tabgenie.TableKey) (*tabgenie.Favourite, error) {
	return s.AddFavouriteFn(ctx, key)
}

func (s *FavouriteService) RemoveFavourite(ctx context.Context, key tabgenie.TableKey) error {
	return s.RemoveFavouriteFn(ctx, key)
}

func (s *FavouriteService) FindFavourites(ctx context.Context) ([]*tabgenie.Favourite, error) {
	return s.FindFavouritesFn(ctx)
}

func (s *FavouriteService) DeleteAllFavourites(ctx context.Context) error {
	return s.DeleteAllFavouritesFn(ctx)
}
