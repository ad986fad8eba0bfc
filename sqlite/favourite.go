package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/tabgenie"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ tabgenie.FavouriteService = (*FavouriteService)(nil)

// FavouriteService implements tabgenie.FavouriteService using SQLite.
type FavouriteService struct {
	db *DB
}

// NewFavouriteService creates a new FavouriteService.
func NewFavouriteService(db *DB) *FavouriteService {
	return &FavouriteService{db: db}
}

// AddFavourite marks a table as favourite. Marking it again returns the
// existing favourite.
func (s *FavouriteService) AddFavourite(ctx context.Context, key tabgenie.TableKey) (*tabgenie.Favourite, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	fav := &tabgenie.Favourite{
		ID:        uuid.New().String(),
		Key:       key,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO favourites (id, dataset, split, table_idx, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (dataset, split, table_idx) DO NOTHING
	`, fav.ID, key.Dataset, key.Split, key.Index, formatTime(fav.CreatedAt))
	if err != nil {
		return nil, err
	}

	return s.findFavourite(ctx, key)
}

// RemoveFavourite unmarks a table.
func (s *FavouriteService) RemoveFavourite(ctx context.Context, key tabgenie.TableKey) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM favourites WHERE dataset = ? AND split = ? AND table_idx = ?
	`, key.Dataset, key.Split, key.Index)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return tabgenie.Errorf(tabgenie.ENOTFOUND, "favourite %s not found", key)
	}
	return nil
}

// FindFavourites returns all favourites in the order they were added.
func (s *FavouriteService) FindFavourites(ctx context.Context) ([]*tabgenie.Favourite, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, dataset, split, table_idx, created_at
		FROM favourites
		ORDER BY created_at, rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favs []*tabgenie.Favourite
	for rows.Next() {
		fav, err := scanFavourite(rows)
		if err != nil {
			return nil, err
		}
		favs = append(favs, fav)
	}
	return favs, rows.Err()
}

// DeleteAllFavourites removes every favourite.
func (s *FavouriteService) DeleteAllFavourites(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM favourites")
	return err
}

func (s *FavouriteService) findFavourite(ctx context.Context, key tabgenie.TableKey) (*tabgenie.Favourite, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, dataset, split, table_idx, created_at
		FROM favourites
		WHERE dataset = ? AND split = ? AND table_idx = ?
	`, key.Dataset, key.Split, key.Index)

	fav, err := scanFavourite(row)
	if err == sql.ErrNoRows {
		return nil, tabgenie.Errorf(tabgenie.ENOTFOUND, "favourite %s not found", key)
	}
	return fav, err
}

func scanFavourite(row scanner) (*tabgenie.Favourite, error) {
	var fav tabgenie.Favourite
	var createdAt string

	if err := row.Scan(&fav.ID, &fav.Key.Dataset, &fav.Key.Split, &fav.Key.Index, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if fav.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &fav, nil
}
