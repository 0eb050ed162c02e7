package cli

import (
	"fmt"
	"os"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/habitctl/internal/backup"
	"github.com/julianstephens/habitctl/internal/storage"
)

type DoctorCmd struct {
	Fix bool `help:"Remove stale lock files."`
}

func (c *DoctorCmd) Run(ctx *Context) error {
	ctx.printLine("Running diagnostics...")
	ctx.printLine("")

	hasError := false

	db, err := ctx.Store.Load()
	if err != nil {
		ctx.printLine("✗ Store readable: FAIL")
		ctx.printLine("  " + err.Error())
		hasError = true
	} else {
		ctx.printLine(fmt.Sprintf("✓ Store readable: OK (%d habits, %d check-ins)", len(db.Habits), len(db.Checkins)))
	}

	if err := c.checkLock(ctx); err != nil {
		ctx.printLine("✗ Lock file: FAIL")
		ctx.printLine("  " + err.Error())
		hasError = true
	} else {
		ctx.printLine("✓ Lock file: OK")
	}

	mgr := backup.NewManager(ctx.Store.Path())
	if infos, err := mgr.List(); err != nil || len(infos) == 0 {
		ctx.printLine(ctx.Styler.Gray("! Backups present: none (run 'habitctl backup create')"))
	} else {
		ctx.printLine(fmt.Sprintf("✓ Backups present: OK (%d)", len(infos)))
	}

	ctx.printLine("")
	if hasError {
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.printLine("All diagnostics passed.")
	return nil
}

// checkLock reports a lock file whose owner process is gone. Such a lock
// blocks every mutation until removed.
func (c *DoctorCmd) checkLock(ctx *Context) error {
	pid, err := storage.ReadLockOwner(ctx.Store.Path())
	if err != nil {
		return err
	}
	if pid == 0 {
		return nil
	}

	proc, err := ps.FindProcess(pid)
	if err != nil {
		return fmt.Errorf("cannot probe lock owner pid %d: %w", pid, err)
	}
	if proc != nil {
		return fmt.Errorf("store is locked by running process %d", pid)
	}

	lockPath := storage.LockPath(ctx.Store.Path())
	if !c.Fix {
		return fmt.Errorf("stale lock file %s (owner pid %d is gone); rerun with --fix to remove", lockPath, pid)
	}
	if err := os.Remove(lockPath); err != nil {
		return fmt.Errorf("cannot remove stale lock file: %w", err)
	}
	ctx.printLine("  removed stale lock file " + lockPath)
	return nil
}
