package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/tabgenie"
	"github.com/fwojciec/tabgenie/catalog"
)

// notesFile is the name of the exported notes file.
const notesFile = "notes.csv"

// Run executes the note set command.
func (c *NoteSetCmd) Run(deps *Dependencies) error {
	key := c.Key()

	t, err := deps.Catalog.Table(deps.Ctx, key, nil)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}
	hash, err := catalog.Fingerprint(t)
	if err != nil {
		return err
	}

	if _, err := deps.Notes.SetNote(deps.Ctx, key, c.Text, hash); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}

	if c.Text == "" {
		fmt.Fprintf(deps.Stdout, "Removed note of %s\n", key)
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Saved note of %s\n", key)
	return nil
}

// Run executes the note show command.
func (c *NoteShowCmd) Run(deps *Dependencies) error {
	key := c.Key()

	note, err := deps.Notes.FindNote(deps.Ctx, key)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, note.Text)

	if note.TableHash == "" {
		return nil
	}
	t, err := deps.Catalog.Table(deps.Ctx, key, nil)
	if err != nil {
		return nil
	}
	if hash, err := catalog.Fingerprint(t); err == nil && hash != note.TableHash {
		fmt.Fprintf(deps.Stderr, "warning: table %s changed since the note was written\n", key)
	}
	return nil
}

// Run executes the note list command.
func (c *NoteListCmd) Run(deps *Dependencies) error {
	filter := tabgenie.NoteFilter{Limit: c.Limit}
	if c.Dataset != "" {
		filter.Dataset = &c.Dataset
	}
	if c.Split != "" {
		filter.Split = &c.Split
	}

	notes, err := deps.Notes.FindNotes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}

	if len(notes) == 0 {
		fmt.Fprintln(deps.Stdout, "No notes found. Use 'tabgenie note set' to add one.")
		return nil
	}
	for _, n := range notes {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", n.Key, n.Text)
	}
	return nil
}

// Run executes the note clear command.
func (c *NoteClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return tabgenie.Errorf(tabgenie.EINVALID, "use --force to confirm deletion")
	}
	if err := deps.Notes.DeleteAllNotes(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "Deleted all notes")
	return nil
}

// Run executes the note export command.
func (c *NoteExportCmd) Run(deps *Dependencies) error {
	notes, err := deps.Notes.FindNotes(deps.Ctx, tabgenie.NoteFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}

	out := c.Out
	if out == "" {
		out = deps.Config.ExportDir
	}
	store := deps.NewStore(out, "notes")
	if err := saveNotes(deps.Ctx, store, notes); err != nil {
		_ = store.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}
	if err := store.Commit(); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d notes to %s\n", len(notes), filepath.Join(out, "notes", notesFile))
	return nil
}

func saveNotes(ctx context.Context, store tabgenie.ExportStore, notes []*tabgenie.Note) error {
	data, err := tabgenie.NotesFrame(notes).CSV()
	if err != nil {
		return err
	}
	return store.Save(ctx, &tabgenie.ExportFile{Name: notesFile, Data: []byte(data)})
}
