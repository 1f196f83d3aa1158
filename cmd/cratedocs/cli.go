package main

import (
	"context"
	"io"

	"github.com/fwojciec/cratedocs"
	"github.com/fwojciec/cratedocs/convert"
	"github.com/fwojciec/cratedocs/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Lockfile cratedocs.LockfileParser
	Store    cratedocs.DocStore
	Fetcher  cratedocs.CrateFetcher
	Pipeline *pipeline.Pipeline
	Batch    *convert.Batch
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Deps    DepsCmd    `cmd:"" help:"List dependencies pinned by a Cargo.lock manifest"`
	Fetch   FetchCmd   `cmd:"" help:"Fetch crate documentation from docs.rs"`
	Save    SaveCmd    `cmd:"" help:"Save documentation sections from a JSON file"`
	Sync    SyncCmd    `cmd:"" help:"Fetch and cache documentation for manifest dependencies"`
	List    ListCmd    `cmd:"" help:"List cached crate documentation"`
	Show    ShowCmd    `cmd:"" help:"Show cached documentation for a crate"`
	Convert ConvertCmd `cmd:"" help:"Convert a directory of HTML files to markdown"`
}

// DepsCmd is the "deps" subcommand.
type DepsCmd struct {
	Manifest string `arg:"" help:"Path to Cargo.lock"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	Crate    string `arg:"" help:"Crate name"`
	Version  string `arg:"" help:"Crate version"`
	Features bool   `short:"F" help:"Include the feature flags page"`
	Save     bool   `short:"s" help:"Store the fetched documentation in the cache"`
}

// SaveCmd is the "save" subcommand.
type SaveCmd struct {
	Crate   string `arg:"" help:"Crate name"`
	Version string `arg:"" help:"Crate version"`
	File    string `arg:"" optional:"" help:"JSON file mapping section keys to markdown (defaults to stdin)"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct {
	Manifest string `arg:"" help:"Path to Cargo.lock"`
	Features bool   `short:"F" help:"Include feature flag pages"`
	Crates   int    `short:"n" default:"5" help:"How many dependencies to process"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Crate string `arg:"" help:"Crate name or name prefix"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Src         string `arg:"" help:"Directory of HTML files"`
	Dst         string `arg:"" help:"Output directory for markdown files"`
	Extract     bool   `short:"x" help:"Isolate main content before converting"`
	Readability bool   `help:"Isolate content with the readability engine instead of trafilatura (implies --extract)"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent conversion limit"`
}
