package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"slidekit/deck"
)

// watchCmd re-inspects a presentation each time it changes on disk.
var watchCmd = &cobra.Command{
	Use:   "watch [file.pptx]",
	Short: "Re-run info whenever the file changes",
	Long: `Watches the presentation file and prints a fresh summary after each
write, debounced so a burst of writes produces one summary. Stop with Ctrl-C.

Example:
  slidekit watch talk.pptx`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors and PowerPoint replace the file on
	// save, which drops a watch set on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	baseCtx := cmd.Context()
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(baseCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report := func() {
		pres, err := deck.Open(path)
		if err != nil {
			logger.Warn("reopen failed", zap.String("path", path), zap.Error(err))
			return
		}
		summaries, err := summarize(pres)
		if err != nil {
			logger.Warn("inspection failed", zap.Error(err))
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "--- %s ---\n", time.Now().Format(time.TimeOnly))
		renderInfoTable(cmd, path, pres, summaries)
	}
	report()

	debounce := cfg.DebounceDuration()
	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pending:
			report()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("file event", zap.String("op", event.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", zap.Error(err))
		}
	}
}
