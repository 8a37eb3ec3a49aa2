package commands

import (
	"flag"
	"fmt"

	"github.com/0xAlexFox/shadowrocket-config/internal/config"
	"github.com/0xAlexFox/shadowrocket-config/internal/lists"
	"github.com/0xAlexFox/shadowrocket-config/internal/log"
)

func CreateNormalizeCommand() *NormalizeCommand {
	gc := &NormalizeCommand{
		fs: flag.NewFlagSet("normalize", flag.ExitOnError),
	}

	gc.fs.BoolVar(&gc.SkipDomains, "skip-domains", false, "Skip domain list directories")
	gc.fs.BoolVar(&gc.SkipIP, "skip-ip", false, "Skip IP list directories")
	gc.fs.BoolVar(&gc.NoBackup, "no-backup", false, "Do not write a .bak copy before rewriting each file")
	gc.fs.BoolVar(&gc.DryRun, "dry-run", false, "Report what would change without writing anything")

	return gc
}

type NormalizeCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	SkipDomains bool
	SkipIP      bool
	NoBackup    bool
	DryRun      bool
}

func (g *NormalizeCommand) Name() string {
	return g.fs.Name()
}

func (g *NormalizeCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.SkipDomains && g.SkipIP {
		return fmt.Errorf("--skip-domains and --skip-ip are used, nothing to do")
	}

	if cfg, err := loadAndValidateConfig(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *NormalizeCommand) Run() error {
	makeBackup := g.cfg.General.ShouldMakeBackup() && !g.NoBackup
	processor := lists.NewProcessor(g.cfg, makeBackup, g.DryRun)

	var total lists.Summary

	if !g.SkipDomains {
		summary, err := processor.NormalizeDomainLists()
		if err != nil {
			return fmt.Errorf("failed to normalize domain lists: %v", err)
		}
		log.Infof("Domain lists done: %d files, %d prefixes added", summary.Files, summary.Rewritten)
		total.Files += summary.Files
		total.Rewritten += summary.Rewritten
		total.Kept += summary.Kept
		total.Dropped += summary.Dropped
	}

	if !g.SkipIP {
		summary, err := processor.NormalizeIPLists()
		if err != nil {
			return fmt.Errorf("failed to normalize IP lists: %v", err)
		}
		log.Infof("IP lists done: %d files, %d rewritten, %d kept, %d dropped",
			summary.Files, summary.Rewritten, summary.Kept, summary.Dropped)
		total.Files += summary.Files
		total.Rewritten += summary.Rewritten
		total.Kept += summary.Kept
		total.Dropped += summary.Dropped
	}

	if g.DryRun {
		log.Infof("Dry run, nothing written. Total: %d files, %d rewritten, %d kept, %d dropped",
			total.Files, total.Rewritten, total.Kept, total.Dropped)
	} else {
		log.Infof("Done. Total: %d files, %d rewritten, %d kept, %d dropped",
			total.Files, total.Rewritten, total.Kept, total.Dropped)
	}

	return nil
}
