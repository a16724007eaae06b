package settings

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

const (
	lockRetries      = 50
	lockRetryBackoff = time.Millisecond
)

// writeFileLocked replaces path atomically: the data goes to a synced temp
// file in the same directory, which is renamed over path while holding an
// advisory lock next to it. The lock file is never removed: unlinking it
// would let two writers lock different inodes.
func writeFileLocked(path string, data []byte) error {
	dir := filepath.Dir(path)
	file, err := os.CreateTemp(dir, ".tmp_"+filepath.Base(path))
	if err != nil {
		return errors.Wrap(err, "could not create temp settings file")
	}
	tmpName := file.Name()
	defer os.Remove(tmpName)

	if _, err := file.Write(data); err != nil {
		file.Close()
		return errors.Wrap(err, "could not write temp settings file")
	}
	if err := file.Sync(); err != nil {
		file.Close()
		return errors.Wrap(err, "could not fsync temp settings file")
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(err, "could not close temp settings file")
	}

	lockPath := path + ".lock"
	fileLock := flock.New(lockPath)
	retries := 0
	for {
		locked, err := fileLock.TryLock()
		if err != nil {
			return errors.Wrap(err, "could not try locking settings file")
		}
		if locked {
			break
		}
		retries++
		if retries > lockRetries {
			return errors.New("could not obtain settings lock")
		}
		time.Sleep(lockRetryBackoff)
	}
	defer func() {
		if err := fileLock.Unlock(); err != nil {
			slog.Error("could not unlock settings file", "error", err)
		}
	}()

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "could not move temp settings file into place")
	}

	d, err := os.Open(dir)
	if err != nil {
		return errors.Wrap(err, "could not open settings directory")
	}
	defer d.Close()
	if err := d.Sync(); err != nil {
		return errors.Wrap(err, "could not fsync settings directory")
	}
	return nil
}
