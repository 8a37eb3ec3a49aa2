package lists

import (
	"net/netip"
	"sort"
	"strings"

	merge "github.com/EvilSuperstars/go-cidrman"

	"github.com/0xAlexFox/shadowrocket-config/internal/config"
	"github.com/0xAlexFox/shadowrocket-config/internal/log"
	"github.com/0xAlexFox/shadowrocket-config/internal/rules"
)

// AggregateResult holds the per-file counters of one aggregation pass.
type AggregateResult struct {
	Path     string
	Networks int
	Merged   int
	Dropped  int
}

// AggregateSummary aggregates the results of a whole aggregation run.
type AggregateSummary struct {
	Files    int
	Networks int
	Merged   int
	Dropped  int
}

func (s *AggregateSummary) add(r AggregateResult) {
	s.Files++
	s.Networks += r.Networks
	s.Merged += r.Merged
	s.Dropped += r.Dropped
}

// Aggregator collapses the networks of each IP list file into a minimal
// merged CIDR set. Unlike normalization it reorders and deduplicates:
// comment lines are kept first in their original order, followed by one
// rule per merged network.
type Aggregator struct {
	cfg        *config.Config
	makeBackup bool
	dryRun     bool
}

func NewAggregator(cfg *config.Config, makeBackup, dryRun bool) *Aggregator {
	return &Aggregator{
		cfg:        cfg,
		makeBackup: makeBackup,
		dryRun:     dryRun,
	}
}

// AggregateIPLists merges the networks of every list file under the
// configured IP directories.
func (a *Aggregator) AggregateIPLists() (AggregateSummary, error) {
	var summary AggregateSummary

	normalizer := rules.NewIPNormalizer(a.cfg.IP.Prefix, a.cfg.IP.NoResolveFlag, a.cfg.IP.RuleTemplate)

	for _, dir := range a.cfg.AbsIPDirs() {
		if !DirExists(dir) {
			log.Warnf("Directory not found, skipping: %s", dir)
			continue
		}

		files, err := FindListFiles(dir, a.cfg.General.ListExtension)
		if err != nil {
			return summary, err
		}

		for _, file := range files {
			result, err := a.aggregateFile(file, normalizer)
			if err != nil {
				return summary, err
			}

			log.Infof("Aggregated \"%s\": %d networks merged into %d, %d dropped",
				result.Path, result.Networks, result.Merged, result.Dropped)
			summary.add(result)
		}
	}

	return summary, nil
}

func (a *Aggregator) aggregateFile(path string, normalizer *rules.IPNormalizer) (AggregateResult, error) {
	result := AggregateResult{Path: path}

	srcLines, err := ReadListLines(path)
	if err != nil {
		return result, err
	}

	var comments []string
	var v4 []string
	var v6 []netip.Prefix
	for _, raw := range srcLines {
		trimmed := strings.TrimSpace(raw)
		if strings.HasPrefix(trimmed, "#") {
			comments = append(comments, raw)
			continue
		}

		cidr, outcome := normalizer.ExtractCIDR(raw)
		switch outcome {
		case rules.Dropped:
			result.Dropped++
		case rules.Rewritten:
			// ExtractCIDR only emits canonical prefixes, so this
			// parse cannot fail.
			prefix, perr := netip.ParsePrefix(cidr)
			if perr != nil {
				result.Dropped++
				continue
			}
			if prefix.Addr().Is4() {
				v4 = append(v4, cidr)
			} else {
				v6 = append(v6, prefix)
			}
			result.Networks++
		}
		// Blank lines carry nothing and are not kept: aggregation
		// rewrites the whole body anyway.
	}

	// go-cidrman merges IPv4 only; the IPv6 side is handled separately.
	var merged []string
	if len(v4) > 0 {
		if merged, err = merge.MergeCIDRs(v4); err != nil {
			return result, err
		}
	}
	merged = append(merged, mergeV6(v6)...)
	result.Merged = len(merged)

	if a.dryRun {
		return result, nil
	}

	if a.makeBackup {
		if err := WriteBackup(path, srcLines, a.cfg.General.BackupExtension); err != nil {
			return result, err
		}
	}

	outLines := make([]string, 0, len(comments)+len(merged))
	outLines = append(outLines, comments...)
	for _, cidr := range merged {
		outLines = append(outLines, normalizer.RenderRule(cidr))
	}

	if err := WriteListLines(path, outLines); err != nil {
		return result, err
	}

	return result, nil
}

// mergeV6 collapses an IPv6 network set by removing every prefix that is
// fully covered by another prefix in the set, returning the survivors in
// address order. Adjacent sibling networks are not combined.
func mergeV6(prefixes []netip.Prefix) []string {
	if len(prefixes) == 0 {
		return nil
	}

	sort.Slice(prefixes, func(i, j int) bool {
		if c := prefixes[i].Addr().Compare(prefixes[j].Addr()); c != 0 {
			return c < 0
		}
		return prefixes[i].Bits() < prefixes[j].Bits()
	})

	// After sorting, a covering prefix always precedes the networks it
	// contains (its masked address is the lowest of the range, ties are
	// broken by prefix length).
	out := []string{prefixes[0].String()}
	covering := prefixes[0]
	for _, p := range prefixes[1:] {
		if covering.Contains(p.Addr()) && covering.Bits() <= p.Bits() {
			continue
		}
		out = append(out, p.String())
		covering = p
	}

	return out
}
