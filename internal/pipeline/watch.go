package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gazebosim/gz-msgs/internal/logger"
)

// DefaultDebounce groups editor save bursts into one regeneration.
const DefaultDebounce = 200 * time.Millisecond

// Watch calls run once up front and again whenever a schema file changes,
// until ctx is cancelled. Failures from run are logged, not returned.
func (p *Pipeline) Watch(ctx context.Context, debounce time.Duration, run func(context.Context) error) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	dirs, err := p.watchDirs()
	if err != nil {
		return err
	}
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("watching %s: %w", d, err)
		}
	}
	p.Log.Info("watching schema directories", logger.F("dirs", len(dirs)))

	p.runLogged(ctx, run)

	var (
		timer   *time.Timer
		trigger <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Ext(ev.Name) != ".proto" {
				if ev.Has(fsnotify.Create) {
					if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
						_ = w.Add(ev.Name)
					}
				}
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			p.Log.Debug("schema changed", logger.F("path", ev.Name), logger.F("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			trigger = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			p.Log.Error("watcher error", logger.Err(err))
		case <-trigger:
			trigger = nil
			p.runLogged(ctx, run)
		}
	}
}

func (p *Pipeline) runLogged(ctx context.Context, run func(context.Context) error) {
	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		p.Log.Error("generation failed", logger.Err(err))
	}
}

// watchDirs lists every directory under the schema roots.
func (p *Pipeline) watchDirs() ([]string, error) {
	var dirs []string
	for _, root := range p.Config.Schema.Paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("schema path %s: %w", root, err)
		}
		if !info.IsDir() {
			dirs = append(dirs, filepath.Dir(root))
			continue
		}
		err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				dirs = append(dirs, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return dirs, nil
}
