package normalize

import (
	"maps"
	"slices"
	"strings"

	"github.com/rnacentral/pipeline-setup/pkg/domain"
)

// GroupDefaults lists the members enabled when a group is accepted as a whole.
var GroupDefaults = map[string][]string{
	"ensembl": {"fungi", "metazoa", "plants", "protists", "vertebrates"},
}

// DatabaseConfig is the normalized database selection.
// A name appears in at most one of Flags and Groups.
type DatabaseConfig struct {
	Flags  map[string]bool
	Groups map[string]map[string]bool
}

// Tree merges flags and groups into the single nested mapping used for rendering.
func (c DatabaseConfig) Tree() map[string]any {
	out := make(map[string]any, len(c.Flags)+len(c.Groups))
	for name, on := range c.Flags {
		out[name] = on
	}
	for name, members := range c.Groups {
		out[name] = maps.Clone(members)
	}
	return out
}

// Names returns every top-level name in sorted order.
func (c DatabaseConfig) Names() []string {
	names := make([]string, 0, len(c.Flags)+len(c.Groups))
	for name := range c.Flags {
		names = append(names, name)
	}
	for name := range c.Groups {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

type partition struct {
	grouped map[string]map[string]bool
	bare    map[string]bool
}

// Databases normalizes database answers.
//
// Keys are partitioned before anything is built, so the outcome never depends
// on map iteration order:
//   - "group.member" keys fold into Groups[group][member]. Only the first dot splits.
//   - a bare key naming a group that also has member keys is dropped.
//   - a bare known group answered true with no member keys expands to its defaults.
//   - a bare known group answered false with no member keys is not recorded.
//   - anything else becomes a top-level flag.
func Databases(raw domain.Answers) (DatabaseConfig, error) {
	p, err := partitionKeys(raw)
	if err != nil {
		return DatabaseConfig{}, err
	}

	cfg := DatabaseConfig{
		Flags:  make(map[string]bool),
		Groups: make(map[string]map[string]bool, len(p.grouped)),
	}
	for group, members := range p.grouped {
		cfg.Groups[group] = maps.Clone(members)
	}

	for key, on := range p.bare {
		if _, hasMembers := p.grouped[key]; hasMembers {
			continue
		}
		defaults, isGroup := GroupDefaults[key]
		switch {
		case isGroup && on:
			members := make(map[string]bool, len(defaults))
			for _, m := range defaults {
				members[m] = true
			}
			cfg.Groups[key] = members
		case isGroup:
			// declined as a whole, nothing to record
		default:
			cfg.Flags[key] = on
		}
	}
	return cfg, nil
}

func partitionKeys(raw domain.Answers) (partition, error) {
	p := partition{
		grouped: make(map[string]map[string]bool),
		bare:    make(map[string]bool),
	}
	for _, key := range raw.Keys() {
		on, err := raw.Bool(key, false)
		if err != nil {
			return partition{}, err
		}

		group, member, ok := splitGroupKey(key)
		if !ok {
			p.bare[key] = on
			continue
		}
		if p.grouped[group] == nil {
			p.grouped[group] = make(map[string]bool)
		}
		p.grouped[group][member] = on
	}
	return p, nil
}

// splitGroupKey splits "group.member" on the first dot.
// Keys with an empty group or member are not grouped.
func splitGroupKey(key string) (group, member string, ok bool) {
	group, member, found := strings.Cut(key, ".")
	if !found || group == "" || member == "" {
		return "", "", false
	}
	return group, member, true
}
