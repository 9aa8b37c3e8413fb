package jpfont

import (
	"sort"
	"strings"
)

// FontIndex reports which font families are installed on the host.
type FontIndex interface {
	// Has reports whether the given family name is installed.
	Has(family string) bool

	// Families returns every known family name.
	Families() []string
}

// SetIndex is an in-memory FontIndex backed by a set of family names.
// Lookups are case-insensitive.
type SetIndex struct {
	names map[string]string // normalized name -> name as reported
}

func NewSetIndex(families ...string) *SetIndex {
	idx := &SetIndex{names: make(map[string]string, len(families))}
	for _, family := range families {
		idx.Add(family)
	}
	return idx
}

// Add records a family name. Blank names are ignored.
func (s *SetIndex) Add(family string) {
	family = strings.TrimSpace(family)
	if family == "" {
		return
	}
	s.names[normalizeFamily(family)] = family
}

func (s *SetIndex) Has(family string) bool {
	_, ok := s.names[normalizeFamily(family)]
	return ok
}

func (s *SetIndex) Families() []string {
	families := make([]string, 0, len(s.names))
	for _, name := range s.names {
		families = append(families, name)
	}
	sort.Strings(families)
	return families
}

func normalizeFamily(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
