package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/tabgenie"
	"github.com/fwojciec/tabgenie/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavouriteService(t *testing.T) {
	t.Parallel()

	t.Run("adds favourites once", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFavouriteService(setupTestDB(t))
		ctx := context.Background()
		key := tabgenie.TableKey{Dataset: "webnlg", Split: "test", Index: 4}

		first, err := svc.AddFavourite(ctx, key)
		require.NoError(t, err)
		second, err := svc.AddFavourite(ctx, key)
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		favs, err := svc.FindFavourites(ctx)
		require.NoError(t, err)
		assert.Len(t, favs, 1)
	})

	t.Run("lists favourites in insertion order", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFavouriteService(setupTestDB(t))
		ctx := context.Background()
		for _, idx := range []int{5, 1, 3} {
			_, err := svc.AddFavourite(ctx, tabgenie.TableKey{Dataset: "dart", Split: "dev", Index: idx})
			require.NoError(t, err)
		}

		favs, err := svc.FindFavourites(ctx)

		require.NoError(t, err)
		require.Len(t, favs, 3)
		assert.Equal(t, 5, favs[0].Key.Index)
		assert.Equal(t, 1, favs[1].Key.Index)
		assert.Equal(t, 3, favs[2].Key.Index)
	})

	t.Run("removes a favourite", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFavouriteService(setupTestDB(t))
		ctx := context.Background()
		key := tabgenie.TableKey{Dataset: "dart", Split: "dev", Index: 0}
		_, err := svc.AddFavourite(ctx, key)
		require.NoError(t, err)

		require.NoError(t, svc.RemoveFavourite(ctx, key))

		err = svc.RemoveFavourite(ctx, key)
		assert.Equal(t, tabgenie.ENOTFOUND, tabgenie.ErrorCode(err))
	})

	t.Run("rejects invalid keys", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFavouriteService(setupTestDB(t))

		_, err := svc.AddFavourite(context.Background(), tabgenie.TableKey{Dataset: "dart", Split: "valid"})

		assert.Equal(t, tabgenie.EINVALID, tabgenie.ErrorCode(err))
	})

	t.Run("removes all favourites", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewFavouriteService(setupTestDB(t))
		ctx := context.Background()
		_, err := svc.AddFavourite(ctx, tabgenie.TableKey{Dataset: "dart", Split: "dev", Index: 0})
		require.NoError(t, err)

		require.NoError(t, svc.DeleteAllFavourites(ctx))

		favs, err := svc.FindFavourites(ctx)
		require.NoError(t, err)
		assert.Empty(t, favs)
	})
}
