package catalog

import (
	"regexp"
	"sort"

	"github.com/lumapictures/nukecli/pkgs/errors"
)

// Resolve maps a possibly abbreviated, possibly miscased candidate to exactly
// one catalog entry.
//
// The resolution order is:
//  1. exact match, allowing a single trailing version digit
//  2. the same pattern, case-insensitively
//  3. case-insensitive prefix match; must be unambiguous
//
// Version-suffixed matches are sorted and the lexicographically-last one
// wins, which selects the highest version for single-digit suffixes.
func (c *Catalog) Resolve(candidate string) (string, error) {
	quoted := regexp.QuoteMeta(candidate)

	if match, ok := c.lastMatch(regexp.MustCompile(`^` + quoted + `\d?$`)); ok {
		return match, nil
	}

	if match, ok := c.lastMatch(regexp.MustCompile(`(?i)^` + quoted + `\d?$`)); ok {
		return match, nil
	}

	partialRE := regexp.MustCompile(`(?i)^` + quoted)
	var matches []string
	for _, name := range c.names {
		if partialRE.MatchString(name) {
			matches = append(matches, name)
		}
	}
	switch len(matches) {
	case 0:
		return "", errors.NewNoMatchError(candidate)
	case 1:
		return matches[0], nil
	default:
		return "", errors.NewAmbiguousMatchError(candidate, matches)
	}
}

// lastMatch returns the lexicographically-last catalog entry matching re.
// Single digits sort in numeric order, so among Blur and Blur2 this picks
// Blur2. Multi-digit suffixes would mis-sort; the catalog format has never
// carried one.
func (c *Catalog) lastMatch(re *regexp.Regexp) (string, bool) {
	var matches []string
	for _, name := range c.names {
		if re.MatchString(name) {
			matches = append(matches, name)
		}
	}
	if len(matches) == 0 {
		return "", false
	}
	sort.Strings(matches)
	return matches[len(matches)-1], true
}
