package storage

import (
	"context"
	"os"
	"path/filepath"

	"github.com/san-kum/fluxconv/internal/timesel"
)

// dirLayout is the <case>/<time>/<field><ext> tree shared by the file
// based backends.
type dirLayout struct {
	baseDir string
	ext     string
}

func (l dirLayout) path(name string, t timesel.Instant) string {
	return filepath.Join(l.baseDir, t.Name, name+l.ext)
}

func (l dirLayout) times(ctx context.Context) ([]timesel.Instant, error) {
	entries, err := os.ReadDir(l.baseDir)
	if err != nil {
		return nil, err
	}

	times := make([]timesel.Instant, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.IsDir() {
			continue
		}
		if in, ok := timesel.ParseInstant(entry.Name()); ok {
			times = append(times, in)
		}
	}
	timesel.Sort(times)
	return times, nil
}

func (l dirLayout) prepare(t timesel.Instant) error {
	return os.MkdirAll(filepath.Join(l.baseDir, t.Name), 0755)
}
