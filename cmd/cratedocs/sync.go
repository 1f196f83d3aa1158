package main

import (
	"fmt"

	"github.com/fwojciec/cratedocs"
	"github.com/fwojciec/cratedocs/pipeline"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	deps.Pipeline.IncludeFeatures = c.Features
	if c.Crates > 0 {
		deps.Pipeline.MaxCrates = c.Crates
	}

	var total int
	var manifestErr error
	progress := func(event pipeline.ProgressEvent) {
		switch event.Type {
		case pipeline.ProgressStarted:
			total = event.Total
			fmt.Fprintf(deps.Stdout, "Syncing %d crates\n", event.Total)
		case pipeline.ProgressManifestFailed:
			manifestErr = event.Error
			fmt.Fprintf(deps.Stderr, "error: %s\n", cratedocs.ErrorMessage(event.Error))
		case pipeline.ProgressCrateCached:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s %s cached\n", event.Completed, event.Total, event.Crate.Name, event.Crate.Version)
		case pipeline.ProgressCrateSaved:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s %s saved\n", event.Completed, event.Total, event.Crate.Name, event.Crate.Version)
		case pipeline.ProgressCrateFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s %s: %s\n", event.Crate.Name, event.Crate.Version, cratedocs.ErrorMessage(event.Error))
		case pipeline.ProgressFinished:
			// Summary printed after the run completes
		}
	}

	result := deps.Pipeline.Run(deps.Ctx, c.Manifest, progress)
	if manifestErr != nil {
		return manifestErr
	}

	fmt.Fprintf(deps.Stdout, "Cached %d of %d crates\n", len(result), total)

	return nil
}
