package main

import (
	"fmt"

	"github.com/fwojciec/tabgenie"
)

// Run executes the favourite add command.
func (c *FavouriteAddCmd) Run(deps *Dependencies) error {
	key := c.Key()

	// Only existing tables can be marked.
	if _, err := deps.Catalog.Table(deps.Ctx, key, nil); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}
	if _, err := deps.Favourites.AddFavourite(deps.Ctx, key); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added %s to favourites\n", key)
	return nil
}

// Run executes the favourite remove command.
func (c *FavouriteRemoveCmd) Run(deps *Dependencies) error {
	key := c.Key()
	if err := deps.Favourites.RemoveFavourite(deps.Ctx, key); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Removed %s from favourites\n", key)
	return nil
}

// Run executes the favourite list command.
func (c *FavouriteListCmd) Run(deps *Dependencies) error {
	favs, err := deps.Favourites.FindFavourites(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}

	if len(favs) == 0 {
		fmt.Fprintln(deps.Stdout, "No favourites found. Use 'tabgenie favourite add' to mark a table.")
		return nil
	}
	for _, f := range favs {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", f.Key, f.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// Run executes the favourite clear command.
func (c *FavouriteClearCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return tabgenie.Errorf(tabgenie.EINVALID, "use --force to confirm deletion")
	}
	if err := deps.Favourites.DeleteAllFavourites(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", tabgenie.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, "Deleted all favourites")
	return nil
}
