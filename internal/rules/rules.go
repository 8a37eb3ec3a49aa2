// Package rules contains the per-line transforms applied to rule list
// files: the domain-suffix prefixer and the IP/CIDR canonicalizer.
package rules

import "strings"

// Outcome describes what a normalizer decided about a single line.
type Outcome int

const (
	// Kept means the line is preserved and not counted as rewritten.
	// The returned text may still be a trimmed form of the input, as for
	// an already-prefixed domain rule carrying surrounding whitespace.
	Kept Outcome = iota
	// Rewritten means the line changed form.
	Rewritten
	// Dropped means the line is invalid and must be omitted from output.
	Dropped
)

func (o Outcome) String() string {
	switch o {
	case Kept:
		return "kept"
	case Rewritten:
		return "rewritten"
	case Dropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// isPassthrough reports whether a trimmed line is blank or a comment.
// Such lines are always preserved verbatim.
func isPassthrough(trimmed string) bool {
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
