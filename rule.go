package ignorefile

import "strings"

// Kind classifies a rule as excluding or re-including matched paths.
type Kind int

const (
	// Exclude marks paths matched by the rule as ignored.
	Exclude Kind = iota
	// Include re-includes matched paths, overriding earlier Exclude
	// rules (a "!" whitelist rule).
	Include
)

// String returns the kind name for logging and error messages.
func (k Kind) String() string {
	switch k {
	case Exclude:
		return "exclude"
	case Include:
		return "include"
	default:
		return "unknown"
	}
}

// Rule is one parsed pattern line. It is immutable once constructed and
// owned by the RuleSet that compiled it.
type Rule struct {
	// Text is the normalized pattern body in wildcard syntax, with
	// negation, anchoring and directory markers already stripped.
	Text string
	// Kind records whether the rule excludes or re-includes matches.
	Kind Kind
	// Anchored restricts the pattern to match starting at the rule
	// set's root rather than at any depth beneath it.
	Anchored bool
}

// normalize parses one raw pattern line into a Rule. Callers must have
// filtered out empty lines and # comments already; any remaining string
// is acceptable, and malformed wildcard syntax surfaces at compile time.
//
// The strip order is load-bearing: negation, then the anchoring slash,
// then a trailing directory slash, then the backslash of a leading \#
// or \! escape. Checking escapes last means a literal "!"-prefixed
// pattern can only be written as `\!...`, never after a real negation
// marker has been consumed; this matches long-standing behavior that
// existing ignore files depend on.
func normalize(line string) Rule {
	r := Rule{Kind: Exclude}

	if strings.HasPrefix(line, "!") {
		r.Kind = Include
		line = line[1:]
	}

	if strings.HasPrefix(line, "/") {
		r.Anchored = true
		line = line[1:]
	}

	// Directory-only markers match like plain names.
	line = strings.TrimSuffix(line, "/")

	if strings.HasPrefix(line, `\#`) || strings.HasPrefix(line, `\!`) {
		line = line[1:]
	}

	r.Text = line
	return r
}

// isRuleLine reports whether a raw line produces a Rule. Empty lines
// and comment lines are skipped entirely, before any unescaping.
func isRuleLine(line string) bool {
	return line != "" && !strings.HasPrefix(line, "#")
}
