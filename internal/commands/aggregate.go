package commands

import (
	"flag"

	"github.com/0xAlexFox/shadowrocket-config/internal/config"
	"github.com/0xAlexFox/shadowrocket-config/internal/lists"
	"github.com/0xAlexFox/shadowrocket-config/internal/log"
)

func CreateAggregateCommand() *AggregateCommand {
	gc := &AggregateCommand{
		fs: flag.NewFlagSet("aggregate", flag.ExitOnError),
	}

	gc.fs.BoolVar(&gc.NoBackup, "no-backup", false, "Do not write a .bak copy before rewriting each file")
	gc.fs.BoolVar(&gc.DryRun, "dry-run", false, "Report the merge result without writing anything")

	return gc
}

// AggregateCommand collapses IP lists into minimal merged CIDR sets.
// It reorders and deduplicates rules, so it is a separate opt-in step
// and never part of "normalize".
type AggregateCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config

	NoBackup bool
	DryRun   bool
}

func (g *AggregateCommand) Name() string {
	return g.fs.Name()
}

func (g *AggregateCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if cfg, err := loadAndValidateConfig(ctx.ConfigPath); err != nil {
		return err
	} else {
		g.cfg = cfg
	}

	return nil
}

func (g *AggregateCommand) Run() error {
	makeBackup := g.cfg.General.ShouldMakeBackup() && !g.NoBackup
	aggregator := lists.NewAggregator(g.cfg, makeBackup, g.DryRun)

	summary, err := aggregator.AggregateIPLists()
	if err != nil {
		return err
	}

	if g.DryRun {
		log.Infof("Dry run, nothing written. Total: %d files, %d networks would merge into %d, %d dropped",
			summary.Files, summary.Networks, summary.Merged, summary.Dropped)
	} else {
		log.Infof("Done. Total: %d files, %d networks merged into %d, %d dropped",
			summary.Files, summary.Networks, summary.Merged, summary.Dropped)
	}

	return nil
}
