package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/tabgenie"
	"github.com/fwojciec/tabgenie/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteService_SetNote(t *testing.T) {
	t.Parallel()

	t.Run("creates note with generated ID and timestamps", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewNoteService(setupTestDB(t))
		key := tabgenie.TableKey{Dataset: "totto", Split: "dev", Index: 3}

		note, err := svc.SetNote(context.Background(), key, "wrong highlight", "abc")

		require.NoError(t, err)
		assert.NotEmpty(t, note.ID)
		assert.Equal(t, key, note.Key)
		assert.Equal(t, "abc", note.TableHash)
		assert.False(t, note.CreatedAt.IsZero())
	})

	t.Run("replaces the note of the same table", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewNoteService(setupTestDB(t))
		ctx := context.Background()
		key := tabgenie.TableKey{Dataset: "totto", Split: "dev", Index: 3}

		first, err := svc.SetNote(ctx, key, "first", "")
		require.NoError(t, err)
		second, err := svc.SetNote(ctx, key, "second", "")
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		found, err := svc.FindNote(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, "second", found.Text)
		assert.True(t, first.CreatedAt.Equal(found.CreatedAt))
	})

	t.Run("removes the note on empty text", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewNoteService(setupTestDB(t))
		ctx := context.Background()
		key := tabgenie.TableKey{Dataset: "totto", Split: "dev", Index: 3}
		_, err := svc.SetNote(ctx, key, "note", "")
		require.NoError(t, err)

		note, err := svc.SetNote(ctx, key, "", "")

		require.NoError(t, err)
		assert.Nil(t, note)
		_, err = svc.FindNote(ctx, key)
		assert.Equal(t, tabgenie.ENOTFOUND, tabgenie.ErrorCode(err))
	})

	t.Run("returns error for invalid key", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewNoteService(setupTestDB(t))

		_, err := svc.SetNote(context.Background(), tabgenie.TableKey{Split: "dev"}, "note", "")

		assert.Equal(t, tabgenie.EINVALID, tabgenie.ErrorCode(err))
	})
}

func TestNoteService_FindNotes(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewNoteService(setupTestDB(t))
	ctx := context.Background()
	for _, key := range []tabgenie.TableKey{
		{Dataset: "totto", Split: "dev", Index: 2},
		{Dataset: "hitab", Split: "test", Index: 0},
		{Dataset: "totto", Split: "dev", Index: 1},
	} {
		_, err := svc.SetNote(ctx, key, "n", "")
		require.NoError(t, err)
	}

	t.Run("orders notes by key", func(t *testing.T) {
		t.Parallel()

		notes, err := svc.FindNotes(ctx, tabgenie.NoteFilter{})

		require.NoError(t, err)
		require.Len(t, notes, 3)
		assert.Equal(t, "hitab", notes[0].Key.Dataset)
		assert.Equal(t, 1, notes[1].Key.Index)
		assert.Equal(t, 2, notes[2].Key.Index)
	})

	t.Run("filters by dataset", func(t *testing.T) {
		t.Parallel()

		dataset := "totto"
		notes, err := svc.FindNotes(ctx, tabgenie.NoteFilter{Dataset: &dataset})

		require.NoError(t, err)
		assert.Len(t, notes, 2)
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		notes, err := svc.FindNotes(ctx, tabgenie.NoteFilter{Offset: 1})

		require.NoError(t, err)
		assert.Len(t, notes, 2)
	})
}

func TestNoteService_DeleteAllNotes(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewNoteService(setupTestDB(t))
	ctx := context.Background()
	_, err := svc.SetNote(ctx, tabgenie.TableKey{Dataset: "e2e", Split: "train", Index: 0}, "n", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAllNotes(ctx))

	notes, err := svc.FindNotes(ctx, tabgenie.NoteFilter{})
	require.NoError(t, err)
	assert.Empty(t, notes)
}
