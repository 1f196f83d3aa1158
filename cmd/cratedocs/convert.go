package main

import (
	"fmt"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	if c.Concurrency > 0 {
		deps.Batch.Concurrency = c.Concurrency
	}

	results, err := deps.Batch.ConvertDir(deps.Ctx, c.Src, c.Dst)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if len(results) == 0 {
		fmt.Fprintf(deps.Stdout, "No HTML files found in %s.\n", c.Src)
		return nil
	}

	converted := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", r.Input, r.Err)
			continue
		}
		converted++
	}

	fmt.Fprintf(deps.Stdout, "Converted %d of %d files\n", converted, len(results))

	return nil
}
