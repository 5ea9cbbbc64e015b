package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/longhorn/session"
)

const reloadDebounce = 100 * time.Millisecond

var errNoDataFile = errors.New("watch needs a population file: set --data or LONGHORN_DATA")

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload the population whenever the --data file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.close()
			if a.cfg.Data == "" {
				return errNoDataFile
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := a.load(ctx); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printLoad(out, a.loaded)

			w, err := newDataWatcher(a.cfg.Data, a.log)
			if err != nil {
				return err
			}
			defer w.Close()

			return w.Run(ctx, func() {
				info, err := a.sess.LoadFile(ctx, a.cfg.Data)
				if err != nil {
					fmt.Fprintf(out, "reload failed, keeping previous population: %v\n", err)
					return
				}
				printLoad(out, info)
			})
		},
	}
}

func printLoad(out io.Writer, info session.LoadInfo) {
	fmt.Fprintf(out, "loaded %s: %d students, %d connections, %d pairs (load %s)\n",
		info.Source, info.Students, info.Edges, info.Pairs, info.ID)
}

// dataWatcher calls a reload function after writes to one file settle.
type dataWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	log      *zap.Logger
	debounce time.Duration
}

func newDataWatcher(path string, log *zap.Logger) (*dataWatcher, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	// Watch the directory too so editors that save by rename are seen.
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	return &dataWatcher{path: path, watcher: w, log: log, debounce: reloadDebounce}, nil
}

// Run blocks until ctx is done, calling reload once per burst of changes.
// reload never runs concurrently with itself.
func (d *dataWatcher) Run(ctx context.Context, reload func()) error {
	var (
		mu    sync.Mutex
		timer *time.Timer
		busy  sync.Mutex
	)
	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
	}()

	d.log.Info("watching population file", zap.String("path", d.path))
	for {
		select {
		case <-ctx.Done():
			d.log.Info("watch stopped", zap.String("path", d.path))
			return nil

		case event, ok := <-d.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(d.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			d.log.Debug("population file changed", zap.String("op", event.Op.String()))

			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(d.debounce, func() {
				if ctx.Err() != nil {
					return
				}
				busy.Lock()
				defer busy.Unlock()
				reload()
			})
			mu.Unlock()

		case err, ok := <-d.watcher.Errors:
			if !ok {
				return nil
			}
			d.log.Warn("file watcher error", zap.Error(err))
		}
	}
}

func (d *dataWatcher) Close() error {
	return d.watcher.Close()
}
