package ignorefile

import (
	"github.com/bmatcuk/doublestar/v4"
)

// globSet is an ordered collection of compiled wildcard expressions
// that can test one path against all of them at once. Expressions use
// segment-literal semantics: a single * never crosses a path
// separator, only an explicit ** does.
//
// Index order is the order expressions were added, which is what lets
// the resolver pick the latest matching rule. A globSet is immutable
// after compileGlobSet returns and safe for concurrent matching.
type globSet struct {
	exprs []string
}

// compileGlobSet validates every expression up front so that matching
// never has an error path. The returned error is the raw bad-pattern
// cause; callers attach rule context.
func compileGlobSet(exprs []string) (*globSet, error) {
	for _, expr := range exprs {
		if !doublestar.ValidatePattern(expr) {
			return nil, doublestar.ErrBadPattern
		}
	}
	set := make([]string, len(exprs))
	copy(set, exprs)
	return &globSet{exprs: set}, nil
}

// matches returns the indices of every expression matching path, in
// ascending index order. path must be slash-separated and relative.
func (g *globSet) matches(path string) []int {
	var hits []int
	for i, expr := range g.exprs {
		if doublestar.MatchUnvalidated(expr, path) {
			hits = append(hits, i)
		}
	}
	return hits
}

// len reports the number of compiled expressions.
func (g *globSet) len() int {
	return len(g.exprs)
}
