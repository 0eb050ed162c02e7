package cli

import (
	"fmt"

	"github.com/julianstephens/habitctl/internal/backup"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Snapshot the store file."`
	List    BackupListCmd    `cmd:"" help:"List available snapshots."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore a snapshot over the current store."`
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.Path())
	path, err := mgr.Create()
	if err != nil {
		return err
	}
	ctx.printLine("Created backup: " + path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.Path())
	infos, err := mgr.List()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		ctx.printLine(ctx.Styler.Gray("(no backups)"))
		return nil
	}
	for _, info := range infos {
		ctx.printLine(fmt.Sprintf("%s  %s  %d bytes",
			info.Timestamp.Format("2006-01-02 15:04:05"), info.Path, info.Size))
	}
	return nil
}

type BackupRestoreCmd struct {
	Path string `arg:"" help:"Snapshot file to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.Path())
	if err := mgr.Restore(c.Path); err != nil {
		return err
	}
	ctx.printLine("Restored backup: " + c.Path)
	return nil
}
