package pipeline

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/backmassage/casedup/internal/config"
)

// NormalizeKey folds path into its grouping key. The key is only ever
// compared, never used to open a file.
func NormalizeKey(path string, mode config.KeyMode) string {
	if mode == config.KeyName {
		return foldCase(filepath.Base(path))
	}
	return foldCase(path)
}

// foldCase lowercases s rune by rune. Bytes that are not valid UTF-8 are
// copied through unchanged, so names in other encodings that differ in those
// bytes keep distinct keys.
func foldCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
		} else {
			b.WriteRune(unicode.ToLower(r))
		}
		i += size
	}
	return b.String()
}

// PathGroup is every discovered path sharing one normalized key, in
// discovery order.
type PathGroup struct {
	Key   string
	Paths []string
}

// IsDuplicate reports whether the group needs the operator's attention.
func (g *PathGroup) IsDuplicate() bool { return len(g.Paths) > 1 }

// Groups maps normalized keys to their PathGroup and remembers the order in
// which keys were first seen. Build a fresh one per scan.
type Groups struct {
	index map[string]*PathGroup
	order []*PathGroup
	files int
}

// NewGroups returns an empty Groups.
func NewGroups() *Groups {
	return &Groups{index: make(map[string]*PathGroup)}
}

// Add appends path to the group for key, creating the group on first use.
func (g *Groups) Add(key, path string) {
	pg, ok := g.index[key]
	if !ok {
		pg = &PathGroup{Key: key}
		g.index[key] = pg
		g.order = append(g.order, pg)
	}
	pg.Paths = append(pg.Paths, path)
	g.files++
}

// get returns the group for key.
func (g *Groups) get(key string) (*PathGroup, bool) {
	pg, ok := g.index[key]
	return pg, ok
}

// Len is the number of distinct keys.
func (g *Groups) Len() int { return len(g.order) }

// Files is the number of paths added across all groups.
func (g *Groups) Files() int { return g.files }

// all returns every group in first-seen order.
func (g *Groups) all() []*PathGroup {
	out := make([]*PathGroup, len(g.order))
	copy(out, g.order)
	return out
}

// Duplicates returns the groups with two or more paths, in first-seen order.
func (g *Groups) Duplicates() []*PathGroup {
	var out []*PathGroup
	for _, pg := range g.order {
		if pg.IsDuplicate() {
			out = append(out, pg)
		}
	}
	return out
}
