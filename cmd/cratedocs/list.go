package main

import (
	"fmt"

	"github.com/fwojciec/cratedocs"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	entries, err := deps.Store.List(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cratedocs.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No cached documentation. Use 'cratedocs sync' to fetch some.")
		return nil
	}

	for _, name := range entries {
		fmt.Fprintln(deps.Stdout, name)
	}

	return nil
}
