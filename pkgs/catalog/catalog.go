// Package catalog holds the immutable set of node-class names known to the
// host and resolves user-supplied candidates against it.
package catalog

import (
	"regexp"
	"sort"

	"github.com/lumapictures/nukecli/pkgs/errors"
)

// DefaultExclusions filters out the host's file reader and writer plugins,
// which are format backends rather than creatable node classes.
var DefaultExclusions = []string{`^.+Reader$`, `^.+Writer$`}

// Catalog is an immutable, sorted set of node-class names. It is populated
// once at construction and never mutated afterwards.
type Catalog struct {
	names []string
}

// New builds a Catalog from class names, dropping any name that matches one
// of the exclusion patterns. Duplicates are collapsed and the result is
// sorted so resolution is deterministic.
func New(names []string, exclusions []string) (*Catalog, error) {
	excludeRE := make([]*regexp.Regexp, 0, len(exclusions))
	for _, pattern := range exclusions {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, errors.NewCatalogLoadError(pattern, err)
		}
		excludeRE = append(excludeRE, re)
	}

	seen := make(map[string]bool, len(names))
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		excluded := false
		for _, re := range excludeRE {
			if re.MatchString(name) {
				excluded = true
				break
			}
		}
		if !excluded {
			kept = append(kept, name)
		}
	}
	sort.Strings(kept)

	return &Catalog{names: kept}, nil
}

// Names returns a copy of the catalog entries in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.names)
}
