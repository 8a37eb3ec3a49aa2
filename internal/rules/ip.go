package rules

import (
	"net/netip"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/0xAlexFox/shadowrocket-config/internal/log"
)

// Template variables understood by the IP rule template.
const (
	IPRuleTmplPrefix = "prefix"
	IPRuleTmplCIDR   = "cidr"
	IPRuleTmplFlag   = "flag"
)

// IPNormalizer canonicalizes the data lines of an IP/CIDR list into
// `<prefix>,<network>/<bits>,<flag>` rules. Bare IPv4 hosts get /32, bare
// IPv6 hosts get /128, and non-zero host bits are masked off. Lines that
// parse as neither an address, a network, nor an already-prefixed rule are
// dropped.
type IPNormalizer struct {
	Prefix string
	Flag   string

	tmpl *fasttemplate.Template
}

func NewIPNormalizer(prefix, flag, template string) *IPNormalizer {
	return &IPNormalizer{
		Prefix: prefix,
		Flag:   flag,
		tmpl:   fasttemplate.New(template, "{{", "}}"),
	}
}

// NormalizeLine transforms a single line of an IP list: blank and comment
// lines pass through verbatim, parseable lines become canonical rules,
// everything else is dropped.
func (n *IPNormalizer) NormalizeLine(raw string) (string, Outcome) {
	cidr, outcome := n.ExtractCIDR(raw)
	switch outcome {
	case Dropped:
		log.Debugf("Dropping unparseable line: %s", strings.TrimSpace(raw))
		return "", Dropped
	case Kept:
		return raw, Kept
	}

	out := n.RenderRule(cidr)
	if out == raw {
		return raw, Kept
	}
	return out, Rewritten
}

// ExtractCIDR reduces a line to its canonical network, without rendering.
//
// An already-prefixed rule is matched case-insensitively; only its first
// comma-separated field is considered, any trailing fields (including a
// pre-existing no-resolve flag) are discarded. If the address field of such
// a rule does not parse, the whole line is dropped. Kept marks blank and
// comment lines, which carry no network.
func (n *IPNormalizer) ExtractCIDR(raw string) (string, Outcome) {
	line := strings.TrimSpace(raw)

	rulePrefix := n.Prefix + ","
	if len(line) >= len(rulePrefix) && strings.EqualFold(line[:len(rulePrefix)], rulePrefix) {
		body := strings.TrimSpace(line[len(rulePrefix):])
		candidate := body
		if i := strings.Index(body, ","); i >= 0 {
			candidate = strings.TrimSpace(body[:i])
		}

		if cidr, ok := canonicalCIDR(candidate, true); ok {
			return cidr, Rewritten
		}
		return "", Dropped
	}

	if isPassthrough(line) {
		return "", Kept
	}

	if cidr, ok := canonicalCIDR(line, false); ok {
		return cidr, Rewritten
	}
	return "", Dropped
}

// RenderRule renders a canonical network through the rule template.
func (n *IPNormalizer) RenderRule(cidr string) string {
	return n.tmpl.ExecuteString(map[string]interface{}{
		IPRuleTmplPrefix: n.Prefix,
		IPRuleTmplCIDR:   cidr,
		IPRuleTmplFlag:   n.Flag,
	})
}

// canonicalCIDR reduces a candidate address or network to canonical CIDR
// notation. fromRule marks candidates stripped out of an already-prefixed
// rule: for those, a malformed network is a hard failure, while a bare
// candidate falls through to address parsing first.
func canonicalCIDR(candidate string, fromRule bool) (string, bool) {
	if strings.Contains(candidate, "/") {
		if prefix, err := netip.ParsePrefix(candidate); err == nil {
			// Non-strict: mask off host bits instead of rejecting.
			return prefix.Masked().String(), true
		} else if fromRule {
			return "", false
		}
	}

	addr, err := netip.ParseAddr(candidate)
	if err != nil {
		return "", false
	}
	if addr.Is4() {
		return addr.String() + "/32", true
	}
	return addr.String() + "/128", true
}
