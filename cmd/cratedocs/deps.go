package main

import (
	"fmt"

	"github.com/fwojciec/cratedocs"
)

// Run executes the deps command.
func (c *DepsCmd) Run(deps *Dependencies) error {
	content, err := deps.Pipeline.ReadManifest(c.Manifest)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cratedocs.ErrorMessage(err))
		return err
	}

	set := deps.Lockfile.Parse(content)
	if set.Len() == 0 {
		fmt.Fprintf(deps.Stdout, "No dependencies found in %s.\n", c.Manifest)
		return nil
	}

	for _, dep := range set.All() {
		fmt.Fprintf(deps.Stdout, "%s %s\n", dep.Name, dep.Version)
	}

	return nil
}
