package main

import (
	"fmt"

	"github.com/fwojciec/cratedocs"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	docs := deps.Fetcher.FetchCrate(deps.Ctx, c.Crate, c.Version, c.Features)
	if len(docs) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no documentation found for %s %s\n", c.Crate, c.Version)
		return cratedocs.Errorf(cratedocs.ENOTFOUND, "no documentation for %s %s", c.Crate, c.Version)
	}

	if c.Save {
		path, err := deps.Store.Store(deps.Ctx, c.Crate, c.Version, docs)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cratedocs.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved %d sections to %s\n", len(docs), path)
		return nil
	}

	fmt.Fprintln(deps.Stdout, cratedocs.FormatSections(docs))

	return nil
}
