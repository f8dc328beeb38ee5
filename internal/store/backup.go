package store

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// Backup copies both slot files into a timestamped directory under
// <dir>/backups. Persistence elsewhere is best-effort, so a snapshot
// before risky edits is the recovery story. A slot that does not exist
// yet is simply skipped.
func (s Store) Backup(now time.Time) (string, error) {
	dest := filepath.Join(s.Dir, "backups", now.Format("20060102-150405"))
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return "", err
	}

	copied := 0
	for _, name := range []string{projectsFileName, documentsFileName} {
		src := filepath.Join(s.Dir, name)
		if _, err := os.Stat(src); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := copyFile(src, filepath.Join(dest, name)); err != nil {
			return "", err
		}
		copied++
	}
	s.log.Info("backup written", zap.String("dest", dest), zap.Int("slots", copied))
	return dest, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
