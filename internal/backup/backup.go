// Package backup snapshots the store file and rotates old copies. It works
// for both backends since each keeps the whole store in a single file.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// MaxBackups is how many snapshots are kept before rotation.
	MaxBackups = 14
	// BackupDirName is created next to the store file.
	BackupDirName = "backups"
	// BackupFilePrefix namespaces snapshot files.
	BackupFilePrefix = "habitctl-"
)

// Info describes one snapshot on disk.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager handles snapshot create/list/restore for one store path.
type Manager struct {
	dbPath    string
	backupDir string
}

func NewManager(dbPath string) *Manager {
	return &Manager{
		dbPath:    dbPath,
		backupDir: filepath.Join(filepath.Dir(dbPath), BackupDirName),
	}
}

func (m *Manager) BackupDir() string { return m.backupDir }

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}

// Create snapshots the store file, returning the snapshot path. It then
// rotates so at most MaxBackups remain.
func (m *Manager) Create() (string, error) {
	if err := os.MkdirAll(m.backupDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}
	if _, err := os.Stat(m.dbPath); os.IsNotExist(err) {
		return "", fmt.Errorf("store does not exist: %s", m.dbPath)
	}

	ext := filepath.Ext(m.dbPath)
	timestamp := time.Now().Format("20060102-1504")
	backupPath := filepath.Join(m.backupDir, BackupFilePrefix+timestamp+ext)

	// On collision fall back to second precision, then a counter.
	if _, err := os.Stat(backupPath); err == nil {
		timestamp = time.Now().Format("20060102-150405")
		backupPath = filepath.Join(m.backupDir, BackupFilePrefix+timestamp+ext)
		for counter := 1; ; counter++ {
			if _, err := os.Stat(backupPath); os.IsNotExist(err) {
				break
			}
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique backup filename")
			}
			backupPath = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", BackupFilePrefix, timestamp, counter, ext))
		}
	}

	if err := copyFile(m.dbPath, backupPath); err != nil {
		return "", fmt.Errorf("failed to create backup: %w", err)
	}
	if err := m.rotate(); err != nil {
		return "", err
	}
	return backupPath, nil
}

// List returns snapshots newest first.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), BackupFilePrefix) {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		infos = append(infos, Info{
			Path:      filepath.Join(m.backupDir, entry.Name()),
			Timestamp: fi.ModTime(),
			Size:      fi.Size(),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Timestamp.After(infos[j].Timestamp) })
	return infos, nil
}

// Restore replaces the store file with a snapshot. The current store is
// snapshotted first so a bad restore can be undone.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); err != nil {
		return fmt.Errorf("backup not found: %s", backupPath)
	}

	if _, err := os.Stat(m.dbPath); err == nil {
		if _, err := m.Create(); err != nil {
			return fmt.Errorf("failed to snapshot current store before restore: %w", err)
		}
	}

	if err := copyFile(backupPath, m.dbPath); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}
	return nil
}

func (m *Manager) rotate() error {
	infos, err := m.List()
	if err != nil {
		return err
	}
	for _, old := range infos[min(len(infos), MaxBackups):] {
		if err := os.Remove(old.Path); err != nil {
			return fmt.Errorf("failed to rotate backups: %w", err)
		}
	}
	return nil
}
