package engine

import (
	"os"
	"time"

	"github.com/opensync/opensync/internal/errors"
	"github.com/opensync/opensync/internal/target"
	"github.com/opensync/opensync/pkg/fileutil"
)

// backupTimeFormat names backup files down to the second; one backup per
// target per second is the granularity.
const backupTimeFormat = "20060102_150405"

// Backup copies the target's current file to a timestamped sibling
// (<path>.bak.<timestamp>) and returns the backup path. A target whose file
// does not exist yet has nothing to protect and returns "" without error.
func (e *Engine) Backup(tgt *target.Target, projectDir string) (string, error) {
	path := tgt.ResolvePath(projectDir)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "stat %s", path)
	}

	dst := path + ".bak." + time.Now().Format(backupTimeFormat)
	if err := fileutil.CopyFile(path, dst); err != nil {
		return "", errors.Wrapf(err, "backing up %s", path)
	}
	e.log.Debug("created backup", "target", tgt.ID, "path", dst)
	return dst, nil
}
