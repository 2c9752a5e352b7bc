package ignorefile

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// RuleSet holds an ordered list of rules and the combined matcher
// compiled from them, evaluated against paths relative to Root.
//
// A RuleSet is immutable after construction and safe for any number of
// concurrent IsExcluded queries. To reflect changed pattern text, build
// a new RuleSet; nothing is updated in place.
type RuleSet struct {
	rules []Rule
	set   *globSet
	root  string
}

// Compile builds a RuleSet from already-normalized rules. Rule order is
// preserved exactly: it decides precedence, with the latest matching
// rule winning. Any rule whose derived wildcard expression is invalid
// aborts compilation with a compile *Error; no partial RuleSet is
// returned.
func Compile(rules []Rule, root string) (*RuleSet, error) {
	return compileRules(rules, nil, root)
}

// FromLines builds a RuleSet from raw pattern lines, the primary
// construction entry point. Empty lines and lines starting with # are
// skipped entirely; every other line is normalized in order. Compile
// errors identify the offending 1-based input line.
func FromLines(lines []string, root string) (*RuleSet, error) {
	var rules []Rule
	var lineNums []int

	for i, line := range lines {
		if !isRuleLine(line) {
			continue
		}
		rules = append(rules, normalize(line))
		lineNums = append(lineNums, i+1)
	}

	return compileRules(rules, lineNums, root)
}

// compileRules derives one wildcard expression per rule and compiles
// the combined matcher. lineNums carries the original source line per
// rule for diagnostics; nil when the caller had no line information.
func compileRules(rules []Rule, lineNums []int, root string) (*RuleSet, error) {
	exprs := make([]string, len(rules))
	for i, r := range rules {
		expr := deriveExpr(r)
		if !doublestar.ValidatePattern(expr) {
			line := 0
			if lineNums != nil {
				line = lineNums[i]
			}
			return nil, newCompileError(r.Text, line, doublestar.ErrBadPattern)
		}
		exprs[i] = expr
	}

	set, err := compileGlobSet(exprs)
	if err != nil {
		// Individual validation passed, so this is a combined-build
		// failure with no single offending rule.
		return nil, &Error{Category: CategoryCompile, Cause: err}
	}

	owned := make([]Rule, len(rules))
	copy(owned, rules)

	return &RuleSet{
		rules: owned,
		set:   set,
		root:  root,
	}, nil
}

// deriveExpr translates a rule's normalized text into the wildcard
// expression handed to the matcher. Unanchored rules get a recursive
// prefix so they match at any depth, and every rule gets a recursive
// suffix so a matched directory also covers everything nested beneath
// it. The suffix ** matches zero segments, so the named entry itself
// still matches.
func deriveExpr(r Rule) string {
	expr := r.Text
	if !r.Anchored && !strings.HasPrefix(expr, "**/") {
		expr = "**/" + expr
	}
	if !strings.HasSuffix(expr, "/**") {
		expr += "/**"
	}
	return expr
}

// Root returns the directory all queried paths are evaluated against.
func (rs *RuleSet) Root() string {
	return rs.root
}

// Len returns the number of rules in the set.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// IsExcluded reports whether path is excluded by the rule set. Paths
// outside Root are never excluded. Among all matching rules, the one
// appearing latest in the source wins: Exclude means excluded, Include
// means explicitly kept even if an earlier rule excluded it.
//
// This is a pure query with no error path and may be called
// concurrently against the same RuleSet.
func (rs *RuleSet) IsExcluded(path string) bool {
	rel, err := filepath.Rel(rs.root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return false
	}

	// The matcher's report order is its own business; precedence is
	// decided here, by original rule index.
	winner := -1
	for _, i := range rs.set.matches(rel) {
		if i > winner {
			winner = i
		}
	}
	if winner < 0 {
		return false
	}
	return rs.rules[winner].Kind == Exclude
}
