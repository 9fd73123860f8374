// Package watch converts TaskPaper template files as they appear or change
// in a watched directory.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/villert/popthings/internal/convert"
	"github.com/villert/popthings/internal/history"
	"github.com/villert/popthings/internal/launcher"
	"github.com/villert/popthings/internal/placeholder"
)

// Ext is the template file extension the watcher reacts to.
const Ext = ".taskpaper"

// Converter turns a template file into a recorded (and optionally launched)
// conversion. hist may be nil when no history database is configured.
type Converter struct {
	Hist   *history.DB
	Symbol string
	Launch bool
	Logger *slog.Logger
}

// HandleFile converts one template file. Files declaring placeholders are
// skipped: the watcher has no interactive context to resolve them.
func (c *Converter) HandleFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	text := string(data)

	if names := placeholder.Names(text, c.Symbol); len(names) > 0 {
		c.Logger.Warn("watch: template has unresolved placeholders, skipping",
			slog.String("path", path),
			slog.String("placeholders", strings.Join(names, " ")))
		return nil
	}

	res, err := convert.Document(text)
	if err != nil {
		return err
	}

	projects, todos := res.Counts()
	c.Logger.Info("watch: converted",
		slog.String("path", path),
		slog.Int("projects", projects),
		slog.Int("todos", todos))

	if c.Hist != nil {
		err := c.Hist.Record(history.Entry{
			Source:    path,
			Projects:  projects,
			ToDos:     todos,
			URLLength: len(res.URL),
		})
		if err != nil {
			c.Logger.Warn("watch: history record failed", slog.String("error", err.Error()))
		}
	}

	if c.Launch {
		if err := launcher.Open(res.URL); err != nil {
			c.Logger.Warn("watch: launch failed", slog.String("error", err.Error()))
		}
	}
	return nil
}

// Watch runs an fsnotify watcher on dir until ctx is cancelled, converting
// each created or written template file. Editors tend to fire several write
// events per save, so events for the same path are debounced.
func Watch(ctx context.Context, dir string, conv *Converter) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return err
	}
	conv.Logger.Info("watch: started", slog.String("dir", dir))

	const debounce = 500 * time.Millisecond
	lastSeen := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			conv.Logger.Info("watch: stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if filepath.Ext(ev.Name) != Ext {
				continue
			}
			now := time.Now()
			if now.Sub(lastSeen[ev.Name]) < debounce {
				continue
			}
			lastSeen[ev.Name] = now

			if err := conv.HandleFile(ev.Name); err != nil {
				conv.Logger.Error("watch: convert failed",
					slog.String("path", ev.Name),
					slog.String("error", err.Error()))
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			conv.Logger.Error("watch: error", slog.String("error", watchErr.Error()))
		}
	}
}
