package rules

import (
	"strings"

	"github.com/miekg/dns"

	"github.com/0xAlexFox/shadowrocket-config/internal/log"
)

// DomainNormalizer ensures every data line of a domain list carries the
// routing rule prefix. The prefix is matched case-sensitively and is never
// duplicated.
type DomainNormalizer struct {
	Prefix string
}

func NewDomainNormalizer(prefix string) *DomainNormalizer {
	return &DomainNormalizer{Prefix: prefix}
}

// NormalizeLine transforms a single line of a domain list.
// Blank and comment lines are kept verbatim. A line that already starts
// with the prefix is kept in its trimmed form (not counted as rewritten,
// matching the original scripts). Any other line is prefixed.
func (n *DomainNormalizer) NormalizeLine(raw string) (string, Outcome) {
	line := strings.TrimSpace(raw)

	if isPassthrough(line) {
		return raw, Kept
	}

	if strings.HasPrefix(line, n.Prefix+",") {
		// Already processed, keep without surrounding whitespace.
		return line, Kept
	}

	if _, ok := dns.IsDomainName(line); !ok {
		log.Warnf("Line does not look like a hostname, prefixing anyway: %s", line)
	}

	return n.Prefix + "," + line, Rewritten
}
