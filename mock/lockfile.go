package mock

import (
	"github.com/fwojciec/cratedocs"
)

var _ cratedocs.LockfileParser = (*LockfileParser)(nil)

// LockfileParser is a mock implementation of cratedocs.LockfileParser.
type LockfileParser struct {
	ParseFn func(content string) *cratedocs.DependencySet
}

func (p *LockfileParser) Parse(content string) *cratedocs.DependencySet {
	return p.ParseFn(content)
}
