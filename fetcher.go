package cratedocs

import "context"

// CrateFetcher retrieves documentation for one crate version from docs.rs.
type CrateFetcher interface {
	// FetchCrate fetches the crate's root documentation page, up to a
	// fixed number of module pages discovered from it, and optionally the
	// crate's feature flag page. Pages that fail to fetch or yield no
	// content are skipped, so the returned set holds whatever succeeded
	// and may be empty. FetchCrate itself never fails.
	FetchCrate(ctx context.Context, name, version string, includeFeatures bool) DocumentSet
}

// Pacer spaces successive requests to a remote host.
type Pacer interface {
	// Wait blocks until the next request may proceed.
	// Returns an error if the context is canceled first.
	Wait(ctx context.Context) error
}
