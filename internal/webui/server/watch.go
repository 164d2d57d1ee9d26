package server

import (
	"context"
	"path/filepath"
	"time"

	fsnotify "github.com/fsnotify/fsnotify"

	"caid/internal/content"
	"caid/internal/system"
)

// watchDebounce coalesces the bursts of events editors emit on save.
const watchDebounce = 120 * time.Millisecond

// watchContent re-reads ContentFile whenever it changes and upserts the
// company info. The directory is watched because editors often replace the
// file instead of writing it in place.
func (s *Server) watchContent(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	target := filepath.Clean(s.ContentFile)
	if err := w.Add(filepath.Dir(target)); err != nil {
		_ = w.Close()
		return err
	}
	system.Logger.Info("watching content file", "file", target)

	go func() {
		defer w.Close()
		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				pending = time.After(watchDebounce)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				system.Logger.Warn("content watch error", "err", err)
			case <-pending:
				pending = nil
				if err := s.reloadContent(ctx); err != nil {
					system.Logger.Warn("content reload failed", "file", target, "err", err)
				}
			}
		}
	}()
	return nil
}

// reloadContent swaps in the catalog from ContentFile and persists its
// company section.
func (s *Server) reloadContent(ctx context.Context) error {
	cat, err := content.LoadCatalog(s.ContentFile)
	if err != nil {
		return err
	}
	s.setCatalog(cat)
	if _, err := s.Store.UpsertCompany(ctx, *cat.Company); err != nil {
		return err
	}
	system.Logger.Info("content reloaded", "file", s.ContentFile)
	return nil
}
