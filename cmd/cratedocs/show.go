package main

import (
	"fmt"

	"github.com/fwojciec/cratedocs"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	content, err := deps.Store.Index(deps.Ctx, c.Crate)
	if err != nil {
		if cratedocs.ErrorCode(err) == cratedocs.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: no cached documentation for %q. Use 'cratedocs list' to see cached crates.\n", c.Crate)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", cratedocs.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprint(deps.Stdout, content)

	return nil
}
