package cratedocs

// Dependency identifies a single crate pinned by a Cargo.lock manifest.
type Dependency struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// DependencySet holds the dependencies parsed from a manifest.
// Names keep the order in which they first appeared; setting an existing
// name updates its version in place.
type DependencySet struct {
	names    []string
	versions map[string]string
}

// NewDependencySet returns an empty DependencySet.
func NewDependencySet() *DependencySet {
	return &DependencySet{
		versions: make(map[string]string),
	}
}

// Set records a name/version pair. A repeated name overwrites the stored
// version but keeps its original position.
func (s *DependencySet) Set(name, version string) {
	if _, ok := s.versions[name]; !ok {
		s.names = append(s.names, name)
	}
	s.versions[name] = version
}

// Get returns the version recorded for name.
func (s *DependencySet) Get(name string) (string, bool) {
	version, ok := s.versions[name]
	return version, ok
}

// Len returns the number of distinct dependencies.
func (s *DependencySet) Len() int {
	return len(s.names)
}

// All returns the dependencies in manifest order.
func (s *DependencySet) All() []Dependency {
	deps := make([]Dependency, 0, len(s.names))
	for _, name := range s.names {
		deps = append(deps, Dependency{Name: name, Version: s.versions[name]})
	}
	return deps
}

// First returns up to n dependencies in manifest order.
func (s *DependencySet) First(n int) []Dependency {
	if n > len(s.names) {
		n = len(s.names)
	}
	if n <= 0 {
		return nil
	}
	return s.All()[:n]
}

// LockfileParser extracts pinned dependencies from Cargo.lock content.
type LockfileParser interface {
	// Parse scans the manifest for [[package]] entries carrying both a
	// name and a version. Malformed or incomplete entries are skipped;
	// Parse never fails, so unparseable input yields an empty set.
	Parse(content string) *DependencySet
}
