package rules

import "testing"

func TestDomainNormalizeLine(t *testing.T) {
	n := NewDomainNormalizer("DOMAIN-SUFFIX")

	tests := []struct {
		name        string
		line        string
		expected    string
		wantOutcome Outcome
	}{
		{"Blank line", "", "", Kept},
		{"Whitespace only", "   ", "   ", Kept},
		{"Comment", "# services", "# services", Kept},
		{"Indented comment", "  # services", "  # services", Kept},
		{"Plain domain", "example.com", "DOMAIN-SUFFIX,example.com", Rewritten},
		{"Domain with whitespace", "  example.com  ", "DOMAIN-SUFFIX,example.com", Rewritten},
		{"Already prefixed", "DOMAIN-SUFFIX,example.com", "DOMAIN-SUFFIX,example.com", Kept},
		{"Already prefixed with whitespace", "  DOMAIN-SUFFIX,example.com  ", "DOMAIN-SUFFIX,example.com", Kept},
		{"Subdomain", "sub.example.com", "DOMAIN-SUFFIX,sub.example.com", Rewritten},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, outcome := n.NormalizeLine(tt.line)
			if got != tt.expected {
				t.Errorf("NormalizeLine(%q) = %q, want %q", tt.line, got, tt.expected)
			}
			if outcome != tt.wantOutcome {
				t.Errorf("NormalizeLine(%q) outcome = %v, want %v", tt.line, outcome, tt.wantOutcome)
			}
		})
	}
}

func TestDomainNormalizeLine_PrefixCaseSensitive(t *testing.T) {
	n := NewDomainNormalizer("DOMAIN-SUFFIX")

	// A lowercase tag is not recognized as the prefix and gets prefixed
	// again, matching the original scripts.
	got, outcome := n.NormalizeLine("domain-suffix,example.com")
	if outcome != Rewritten {
		t.Errorf("expected lowercase tag to be treated as data, got outcome %v", outcome)
	}
	if got != "DOMAIN-SUFFIX,domain-suffix,example.com" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDomainNormalizeLine_Idempotent(t *testing.T) {
	n := NewDomainNormalizer("DOMAIN-SUFFIX")

	input := []string{
		"",
		"# comment",
		"example.com",
		"  spaced.example.org ",
		"DOMAIN-SUFFIX,done.example.net",
	}

	var first []string
	for _, line := range input {
		normalized, _ := n.NormalizeLine(line)
		first = append(first, normalized)
	}

	for _, line := range first {
		out, outcome := n.NormalizeLine(line)
		if outcome == Rewritten {
			t.Errorf("second pass rewrote %q", line)
		}
		if out != line {
			t.Errorf("second pass changed %q to %q", line, out)
		}
	}
}
