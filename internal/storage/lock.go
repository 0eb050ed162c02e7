package storage

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/habitctl/internal/errdefs"
)

// LockPath returns the advisory lock file guarding a store path.
func LockPath(dbPath string) string {
	return dbPath + ".lock"
}

type fileLock struct {
	path string
}

// acquireLock takes the exclusive advisory lock for a store path. The
// acquisition is a single non-blocking attempt; contention surfaces as a
// storage-busy error rather than a wait.
func acquireLock(dbPath string) (*fileLock, error) {
	path := LockPath(dbPath)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return nil, errdefs.StorageUnavailable("store is locked by another process (lock file %s)", path)
		}
		return nil, errdefs.StorageUnavailable("cannot create lock file: %v", err)
	}

	// Owner info is diagnostic only; doctor uses it to spot stale locks.
	fmt.Fprintf(f, "pid=%d token=%s\n", os.Getpid(), uuid.New().String())
	if err := f.Close(); err != nil {
		os.Remove(path)
		return nil, errdefs.StorageUnavailable("cannot write lock file: %v", err)
	}

	return &fileLock{path: path}, nil
}

func (l *fileLock) release() {
	os.Remove(l.path)
}

// ReadLockOwner parses the pid recorded in a lock file. It returns zero when
// the file does not exist.
func ReadLockOwner(dbPath string) (int, error) {
	data, err := os.ReadFile(LockPath(dbPath))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	for _, field := range strings.Fields(string(data)) {
		if v, ok := strings.CutPrefix(field, "pid="); ok {
			pid, err := strconv.Atoi(v)
			if err != nil {
				return 0, fmt.Errorf("malformed lock file %s", LockPath(dbPath))
			}
			return pid, nil
		}
	}
	return 0, fmt.Errorf("malformed lock file %s", LockPath(dbPath))
}
