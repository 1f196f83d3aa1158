package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/cratedocs"
)

// Run executes the save command.
func (c *SaveCmd) Run(deps *Dependencies) error {
	var in io.Reader = deps.Stdin
	if c.File != "" {
		f, err := os.Open(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
		defer f.Close()
		in = f
	}

	var docs cratedocs.DocumentSet
	if err := json.NewDecoder(in).Decode(&docs); err != nil {
		fmt.Fprintf(deps.Stderr, "error: invalid section JSON: %v\n", err)
		return cratedocs.Errorf(cratedocs.EINVALID, "invalid section JSON: %v", err)
	}

	// Sections with empty content are never stored.
	for key, content := range docs {
		if content == "" {
			delete(docs, key)
		}
	}
	if len(docs) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no sections to save")
		return cratedocs.Errorf(cratedocs.EINVALID, "no sections to save")
	}

	path, err := deps.Store.Store(deps.Ctx, c.Crate, c.Version, docs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", cratedocs.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d sections to %s\n", len(docs), path)

	return nil
}
