// Package toml provides a Cargo.lock implementation of
// cratedocs.LockfileParser backed by pelletier/go-toml.
package toml

import (
	"strings"

	"github.com/fwojciec/cratedocs"
	"github.com/pelletier/go-toml/v2"
)

// Ensure Parser implements cratedocs.LockfileParser at compile time.
var _ cratedocs.LockfileParser = (*Parser)(nil)

// Parser extracts [[package]] entries from Cargo.lock content.
type Parser struct{}

// NewParser creates a new Cargo.lock parser.
func NewParser() *Parser {
	return &Parser{}
}

// lockfile mirrors the subset of the Cargo.lock schema the parser reads.
// Other keys (the top-level version, source, checksum, dependencies) are
// ignored by the decoder.
type lockfile struct {
	Packages []lockfilePackage `toml:"package"`
}

type lockfilePackage struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Parse extracts name/version pairs from Cargo.lock content.
// Well-formed manifests take a strict TOML path; content the TOML decoder
// rejects falls back to a lenient line scan over [[package]] blocks, so
// Parse never fails. Entries missing a name or version are skipped, and a
// repeated name keeps its first-seen position with the last-seen version.
func (p *Parser) Parse(content string) *cratedocs.DependencySet {
	deps := cratedocs.NewDependencySet()

	var lf lockfile
	if err := toml.Unmarshal([]byte(content), &lf); err == nil {
		for _, pkg := range lf.Packages {
			if pkg.Name == "" || pkg.Version == "" {
				continue
			}
			deps.Set(pkg.Name, pkg.Version)
		}
		return deps
	}

	scanBlocks(content, deps)
	return deps
}

// scanBlocks is the lenient fallback. Blocks are separated by blank lines;
// a block contributes an entry when its first non-blank line is exactly
// [[package]] and it holds both a name and a version line.
func scanBlocks(content string, deps *cratedocs.DependencySet) {
	for _, block := range splitBlocks(content) {
		if !isPackageBlock(block) {
			continue
		}

		var name, version string
		for _, line := range block {
			if v, ok := quotedValue(line, "name"); ok {
				name = v
			}
			if v, ok := quotedValue(line, "version"); ok {
				version = v
			}
		}
		if name == "" || version == "" {
			continue
		}
		deps.Set(name, version)
	}
}

// splitBlocks splits content into groups of lines separated by blank lines.
// A line counts as blank when it is empty after trimming whitespace.
func splitBlocks(content string) [][]string {
	var blocks [][]string
	var current []string

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}

func isPackageBlock(block []string) bool {
	return len(block) > 0 && strings.TrimSpace(block[0]) == "[[package]]"
}

// quotedValue extracts the text between the first pair of double quotes on
// a `key = "value"` line. Lines without a complete pair contribute nothing.
func quotedValue(line, key string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, key+" = ") {
		return "", false
	}

	parts := strings.SplitN(trimmed, `"`, 3)
	if len(parts) < 3 || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
