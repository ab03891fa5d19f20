// Package catalog lists the source databases an operator can choose to import.
package catalog

import (
	"strings"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// defaultIgnored are alive databases that are never offered for import.
var defaultIgnored = []string{
	"wormbase",   // comes via ENA now
	"srpdb",      // comes via ENA
	"greengenes", // one-off import
	"lncrnadb",   // one-off import
	"snopy",      // one-off import
	"tair",       // one-off import
	"dictybase",  // one-off import, export is broken
	"noncode",    // one-off import
	"modomics",   // non-standard import process
	"5srrnadb",   // one-off import
	"crw",        // one-off import
}

// IgnoreSet is a set of lower-cased database identifiers.
type IgnoreSet map[string]struct{}

// DefaultIgnoreSet returns a fresh copy of the built-in exclusion set.
func DefaultIgnoreSet() IgnoreSet {
	return NewIgnoreSet(defaultIgnored...)
}

// NewIgnoreSet builds a set from identifiers, lower-casing each one.
func NewIgnoreSet(ids ...string) IgnoreSet {
	s := make(IgnoreSet, len(ids))
	for _, id := range ids {
		s[strings.ToLower(strings.TrimSpace(id))] = struct{}{}
	}
	return s
}

// With returns a new set holding s plus ids.
func (s IgnoreSet) With(ids ...string) IgnoreSet {
	out := make(IgnoreSet, len(s)+len(ids))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range NewIgnoreSet(ids...) {
		out[id] = struct{}{}
	}
	return out
}

// Contains reports whether id (already lower-cased) is ignored.
func (s IgnoreSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Filter returns the lower-cased identifiers of alive records that are not ignored.
// It is a stable pass-through: input order and duplicates are preserved.
func Filter(records []domain.DatabaseRecord, ignore IgnoreSet) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		if !r.Alive {
			continue
		}
		id := strings.ToLower(r.Identifier)
		if ignore.Contains(id) {
			continue
		}
		out = append(out, id)
	}
	return out
}
