package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// RotateLogs removes log files in dir older than maxAge. It is meant to run
// once at startup, before New opens the file for the current day. A missing
// directory is not an error.
func RotateLogs(dir string, maxAge time.Duration, now time.Time) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log dir %s: %w", dir, err)
	}

	var removed []string
	var firstErr error
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), FilePrefix) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) <= maxAge {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("remove %s: %w", entry.Name(), err)
			}
			continue
		}
		removed = append(removed, entry.Name())
	}
	return removed, firstErr
}
