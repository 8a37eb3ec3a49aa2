package lists

import (
	"github.com/0xAlexFox/shadowrocket-config/internal/config"
	"github.com/0xAlexFox/shadowrocket-config/internal/log"
	"github.com/0xAlexFox/shadowrocket-config/internal/rules"
)

// LineNormalizer is a per-line transform over list file lines.
type LineNormalizer interface {
	NormalizeLine(raw string) (string, rules.Outcome)
}

// FileResult holds the per-file counters of one normalization pass.
type FileResult struct {
	Path      string
	Rewritten int
	Kept      int
	Dropped   int
}

// Summary aggregates the results of a whole run.
type Summary struct {
	Files     int
	Rewritten int
	Kept      int
	Dropped   int
}

func (s *Summary) add(r FileResult) {
	s.Files++
	s.Rewritten += r.Rewritten
	s.Kept += r.Kept
	s.Dropped += r.Dropped
}

// Processor rewrites the list files of the configured directory sets.
// Files are processed strictly one at a time in directory-scan order.
type Processor struct {
	cfg        *config.Config
	makeBackup bool
	dryRun     bool
}

func NewProcessor(cfg *config.Config, makeBackup, dryRun bool) *Processor {
	return &Processor{
		cfg:        cfg,
		makeBackup: makeBackup,
		dryRun:     dryRun,
	}
}

// NormalizeDomainLists applies the domain-suffix transform to every list
// file under the configured domain directories.
func (p *Processor) NormalizeDomainLists() (Summary, error) {
	normalizer := rules.NewDomainNormalizer(p.cfg.Domains.Prefix)
	return p.processDirs(p.cfg.AbsDomainDirs(), normalizer)
}

// NormalizeIPLists applies the IP/CIDR transform to every list file under
// the configured IP directories.
func (p *Processor) NormalizeIPLists() (Summary, error) {
	normalizer := rules.NewIPNormalizer(p.cfg.IP.Prefix, p.cfg.IP.NoResolveFlag, p.cfg.IP.RuleTemplate)
	return p.processDirs(p.cfg.AbsIPDirs(), normalizer)
}

func (p *Processor) processDirs(dirs []string, normalizer LineNormalizer) (Summary, error) {
	var summary Summary

	for _, dir := range dirs {
		if !DirExists(dir) {
			log.Warnf("Directory not found, skipping: %s", dir)
			continue
		}

		files, err := FindListFiles(dir, p.cfg.General.ListExtension)
		if err != nil {
			return summary, err
		}

		for _, file := range files {
			result, err := p.processFile(file, normalizer)
			if err != nil {
				return summary, err
			}

			log.Infof("Processed \"%s\": %d rewritten, %d kept, %d dropped",
				result.Path, result.Rewritten, result.Kept, result.Dropped)
			summary.add(result)
		}
	}

	return summary, nil
}

// processFile runs one read/transform/backup/write sequence. The sequence
// is not transactional: a failure mid-way is not rolled back.
func (p *Processor) processFile(path string, normalizer LineNormalizer) (FileResult, error) {
	result := FileResult{Path: path}

	srcLines, err := ReadListLines(path)
	if err != nil {
		return result, err
	}

	outLines := make([]string, 0, len(srcLines))
	for _, raw := range srcLines {
		line, outcome := normalizer.NormalizeLine(raw)
		switch outcome {
		case rules.Dropped:
			result.Dropped++
		case rules.Rewritten:
			result.Rewritten++
			outLines = append(outLines, line)
		default:
			result.Kept++
			outLines = append(outLines, line)
		}
	}

	if p.dryRun {
		return result, nil
	}

	if p.makeBackup {
		if err := WriteBackup(path, srcLines, p.cfg.General.BackupExtension); err != nil {
			return result, err
		}
	}

	if err := WriteListLines(path, outLines); err != nil {
		return result, err
	}

	return result, nil
}
