package dependency

import (
	"sort"
	"strings"
)

// GatedColumns is the set of column names whose entry enforces
// dependencies. Names compare case-insensitively, ignoring surrounding
// whitespace.
type GatedColumns map[string]struct{}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func NewGatedColumns(names ...string) GatedColumns {
	g := make(GatedColumns, len(names))
	for _, name := range names {
		if n := normalizeName(name); n != "" {
			g[n] = struct{}{}
		}
	}
	return g
}

// ParseGatedColumns reads a comma separated list such as "Next Up, Working On".
func ParseGatedColumns(csv string) GatedColumns {
	return NewGatedColumns(strings.Split(csv, ",")...)
}

func (g GatedColumns) Contains(name string) bool {
	_, ok := g[normalizeName(name)]
	return ok
}

// Names returns the normalized names in sorted order.
func (g GatedColumns) Names() []string {
	names := make([]string, 0, len(g))
	for n := range g {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (g GatedColumns) String() string {
	return strings.Join(g.Names(), ",")
}
