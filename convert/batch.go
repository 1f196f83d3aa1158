// Package convert renders saved HTML pages as markdown files.
package convert

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/cratedocs"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds how many files are converted in parallel.
const DefaultConcurrency = 4

// Result holds the outcome of converting a single file.
type Result struct {
	Input  string
	Output string
	Err    error
}

// Batch converts a directory of HTML files to markdown.
type Batch struct {
	Converter cratedocs.Converter

	// Extractor, when set, isolates the main content of each page
	// before conversion. Without it pages are converted whole.
	Extractor cratedocs.Extractor

	// Concurrency bounds parallel conversions.
	// Defaults to DefaultConcurrency.
	Concurrency int
}

// ConvertDir converts every HTML file under srcDir and writes the results
// to matching paths under dstDir, swapping the extension for .md.
// Per-file failures are recorded in the returned results and do not stop
// the batch. Results are ordered by input path.
func (b *Batch) ConvertDir(ctx context.Context, srcDir, dstDir string) ([]Result, error) {
	var inputs []string
	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".html", ".htm":
			inputs = append(inputs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]Result, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			results[i] = b.convertFile(gctx, input, srcDir, dstDir)
			return nil
		})
	}
	_ = g.Wait()

	return results, nil
}

// convertFile reads, optionally extracts, converts, and writes one file.
func (b *Batch) convertFile(ctx context.Context, input, srcDir, dstDir string) Result {
	result := Result{Input: input}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	data, err := os.ReadFile(input)
	if err != nil {
		result.Err = err
		return result
	}

	html := string(data)
	if b.Extractor != nil {
		extracted, err := b.Extractor.Extract(html)
		if err != nil {
			result.Err = err
			return result
		}
		html = extracted.ContentHTML
	}

	markdown, err := b.Converter.Convert(html)
	if err != nil {
		result.Err = err
		return result
	}

	rel, err := filepath.Rel(srcDir, input)
	if err != nil {
		result.Err = err
		return result
	}
	output := filepath.Join(dstDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".md")

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		result.Err = err
		return result
	}
	if err := os.WriteFile(output, []byte(markdown), 0644); err != nil {
		result.Err = err
		return result
	}

	result.Output = output
	return result
}
