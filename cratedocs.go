// Package cratedocs provides a local documentation cache for Rust crates.
// It parses Cargo.lock manifests, fetches crate documentation from docs.rs,
// extracts the content as markdown, and stores it on disk for offline use.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, toml/, fs/).
package cratedocs
