package commands

import (
	"flag"

	"github.com/0xAlexFox/shadowrocket-config/internal/config"
	"github.com/0xAlexFox/shadowrocket-config/internal/lists"
	"github.com/0xAlexFox/shadowrocket-config/internal/log"
)

func CreateCleanBackupsCommand() *CleanBackupsCommand {
	return &CleanBackupsCommand{
		fs: flag.NewFlagSet("clean-backups", flag.ExitOnError),
	}
}

type CleanBackupsCommand struct {
	fs  *flag.FlagSet
	cfg *config.Config
}

func (g *CleanBackupsCommand) Name() string {
	return g.fs.Name()
}

func (g *CleanBackupsCommand) Init(args []string, ctx *AppContext) error {
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

func (g *CleanBackupsCommand) Run() error {
	summary, err := lists.CleanBackups(g.cfg.AllDirs(), g.cfg.General.BackupExtension)
	if err != nil {
		return err
	}

	if summary.Failed > 0 {
		log.Warnf("Removed %d backup files, %d could not be removed", summary.Removed, summary.Failed)
	} else {
		log.Infof("Removed %d backup files", summary.Removed)
	}

	return nil
}
