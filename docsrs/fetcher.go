// Package docsrs fetches crate documentation from docs.rs.
package docsrs

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/cratedocs"
	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the endpoint crate documentation is fetched from.
	DefaultBaseURL = "https://docs.rs"

	// DefaultTimeout is the per-request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies this tool to docs.rs.
	DefaultUserAgent = "cratedocs/1.0 (local documentation tool)"

	// MaxModuleLinks caps how many discovered module pages are fetched
	// per crate.
	MaxModuleLinks = 10
)

// Ensure Fetcher implements cratedocs.CrateFetcher at compile time.
var _ cratedocs.CrateFetcher = (*Fetcher)(nil)

// Fetcher scrapes documentation for a single crate version: the root page,
// up to MaxModuleLinks module pages discovered on it, and optionally the
// feature flags page.
type Fetcher struct {
	Content  cratedocs.ContentExtractor
	Links    cratedocs.LinkDiscoverer
	Features cratedocs.FeatureExtractor
	Pacer    cratedocs.Pacer

	// BaseURL overrides the docs.rs endpoint, mainly for tests.
	// Defaults to DefaultBaseURL.
	BaseURL string
	// Timeout bounds each request. Defaults to DefaultTimeout.
	Timeout time.Duration
	// UserAgent is sent with every request. Defaults to DefaultUserAgent.
	UserAgent string
}

// FetchCrate downloads the documentation set for a crate version. Every
// failure degrades the result instead of propagating: a failed root page
// yields an empty set, a failed module page is skipped, and a failed
// features page contributes nothing.
func (f *Fetcher) FetchCrate(ctx context.Context, name, version string, includeFeatures bool) cratedocs.DocumentSet {
	client := resty.New()
	client.SetTimeout(f.timeout())
	client.SetHeader("User-Agent", f.userAgent())
	defer client.GetClient().CloseIdleConnections()

	docs := make(cratedocs.DocumentSet)

	rootURL := fmt.Sprintf("%s/%s/%s/%s/", f.baseURL(), name, version, name)
	html, err := f.get(ctx, client, rootURL)
	if err != nil {
		return docs
	}

	if content, err := f.Content.Extract(html, name+" (main)"); err == nil && content != "" {
		docs[cratedocs.SectionIndex] = content
	}

	links, err := f.Links.DiscoverLinks(html, rootURL)
	if err != nil {
		links = nil
	}
	if len(links) > MaxModuleLinks {
		links = links[:MaxModuleLinks]
	}

	for _, link := range links {
		if f.Pacer != nil {
			if err := f.Pacer.Wait(ctx); err != nil {
				return docs
			}
		}

		moduleHTML, err := f.get(ctx, client, link.URL)
		if err != nil {
			continue
		}
		if content, err := f.Content.Extract(moduleHTML, link.Name); err == nil && content != "" {
			docs[link.Name] = content
		}
	}

	if includeFeatures && f.Features != nil {
		featuresURL := fmt.Sprintf("%s/crate/%s/%s/features", f.baseURL(), name, version)
		if html, err := f.get(ctx, client, featuresURL); err == nil {
			if content, err := f.Features.ExtractFeatures(html, name); err == nil && content != "" {
				docs[cratedocs.SectionFeatures] = content
			}
		}
	}

	return docs
}

func (f *Fetcher) get(ctx context.Context, client *resty.Client, url string) (string, error) {
	res, err := client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", err
	}
	if res.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", res.StatusCode(), url)
	}
	return res.String(), nil
}

func (f *Fetcher) baseURL() string {
	if f.BaseURL != "" {
		return f.BaseURL
	}
	return DefaultBaseURL
}

func (f *Fetcher) timeout() time.Duration {
	if f.Timeout > 0 {
		return f.Timeout
	}
	return DefaultTimeout
}

func (f *Fetcher) userAgent() string {
	if f.UserAgent != "" {
		return f.UserAgent
	}
	return DefaultUserAgent
}
