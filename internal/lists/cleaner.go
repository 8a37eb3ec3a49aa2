package lists

import (
	"os"

	"github.com/0xAlexFox/shadowrocket-config/internal/log"
)

// CleanSummary aggregates the results of a backup cleanup run.
type CleanSummary struct {
	Removed int
	Failed  int
}

// CleanBackups recursively deletes every backup file under the given
// directories. A deletion failure is logged and counted, the batch
// continues.
func CleanBackups(dirs []string, backupExt string) (CleanSummary, error) {
	var summary CleanSummary

	for _, dir := range dirs {
		if !DirExists(dir) {
			log.Warnf("Directory not found, skipping: %s", dir)
			continue
		}

		files, err := FindListFiles(dir, backupExt)
		if err != nil {
			return summary, err
		}

		for _, file := range files {
			if err := os.Remove(file); err != nil {
				log.Errorf("Failed to remove backup \"%s\": %v", file, err)
				summary.Failed++
				continue
			}
			log.Infof("Removed backup: %s", file)
			summary.Removed++
		}
	}

	return summary, nil
}
