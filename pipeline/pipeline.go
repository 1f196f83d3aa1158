// Package pipeline orchestrates fetching and caching documentation for
// the dependencies listed in a Cargo.lock manifest.
package pipeline

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/cratedocs"
	"github.com/google/uuid"
)

// ManifestName is the only accepted manifest filename.
const ManifestName = "Cargo.lock"

// DefaultMaxCrates is how many manifest dependencies are processed per run.
const DefaultMaxCrates = 5

// Pipeline coordinates the manifest parser, the fetcher, and the cache.
// Per-crate failures degrade the result instead of aborting the run.
type Pipeline struct {
	Lockfile cratedocs.LockfileParser
	Fetcher  cratedocs.CrateFetcher
	Store    cratedocs.DocStore
	Pacer    cratedocs.Pacer

	// MaxCrates caps how many dependencies are processed, in manifest
	// order. Defaults to DefaultMaxCrates.
	MaxCrates int
	// IncludeFeatures asks the fetcher for feature flag pages as well.
	IncludeFeatures bool
}

// ProgressEvent reports progress during a pipeline run.
type ProgressEvent struct {
	Type      ProgressType
	RunID     string
	Crate     cratedocs.Dependency
	Path      string
	Completed int
	Total     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressManifestFailed
	ProgressCrateCached
	ProgressCrateSaved
	ProgressCrateFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting pipeline progress.
type ProgressFunc func(event ProgressEvent)

// ReadManifest reads a dependency manifest from disk. Files not named
// Cargo.lock are treated the same as missing ones.
func (p *Pipeline) ReadManifest(path string) (string, error) {
	if filepath.Base(path) != ManifestName {
		return "", cratedocs.Errorf(cratedocs.ENOTFOUND, "manifest must be named %s: %s", ManifestName, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", cratedocs.Errorf(cratedocs.ENOTFOUND, "manifest not found: %s", path)
		}
		return "", err
	}
	return string(content), nil
}

// Run processes the first MaxCrates dependencies of the manifest: cached
// crates are recorded as-is, the rest are fetched and stored. It returns
// the crate name to cache directory mapping for everything that ended up
// cached. An unreadable manifest yields an empty mapping, reported
// through the progress callback rather than an error.
func (p *Pipeline) Run(ctx context.Context, manifestPath string, progress ProgressFunc) map[string]string {
	runID := uuid.NewString()
	saved := make(map[string]string)

	content, err := p.ReadManifest(manifestPath)
	if err != nil {
		emit(progress, ProgressEvent{Type: ProgressManifestFailed, RunID: runID, Error: err})
		return saved
	}

	deps := p.Lockfile.Parse(content).First(p.maxCrates())
	total := len(deps)
	emit(progress, ProgressEvent{Type: ProgressStarted, RunID: runID, Total: total})

	done := 0
	for _, dep := range deps {
		if docs, err := p.Store.Load(ctx, dep.Name, dep.Version); err == nil && len(docs) > 0 {
			path := p.Store.EntryPath(dep.Name, dep.Version)
			saved[dep.Name] = path
			done++
			emit(progress, ProgressEvent{Type: ProgressCrateCached, RunID: runID, Crate: dep, Path: path, Completed: done, Total: total})
			continue
		}

		if p.Pacer != nil {
			if err := p.Pacer.Wait(ctx); err != nil {
				break
			}
		}

		docs := p.Fetcher.FetchCrate(ctx, dep.Name, dep.Version, p.IncludeFeatures)
		done++
		if len(docs) == 0 {
			emit(progress, ProgressEvent{
				Type:      ProgressCrateFailed,
				RunID:     runID,
				Crate:     dep,
				Completed: done,
				Total:     total,
				Error:     cratedocs.Errorf(cratedocs.ENOTFOUND, "no documentation for %s %s", dep.Name, dep.Version),
			})
			continue
		}

		path, err := p.Store.Store(ctx, dep.Name, dep.Version, docs)
		if err != nil {
			emit(progress, ProgressEvent{Type: ProgressCrateFailed, RunID: runID, Crate: dep, Completed: done, Total: total, Error: err})
			continue
		}

		saved[dep.Name] = path
		emit(progress, ProgressEvent{Type: ProgressCrateSaved, RunID: runID, Crate: dep, Path: path, Completed: done, Total: total})
	}

	emit(progress, ProgressEvent{Type: ProgressFinished, RunID: runID, Completed: done, Total: total})
	return saved
}

func (p *Pipeline) maxCrates() int {
	if p.MaxCrates > 0 {
		return p.MaxCrates
	}
	return DefaultMaxCrates
}

func emit(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
