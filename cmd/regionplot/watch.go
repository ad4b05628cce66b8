// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dive4dec/cs5483-25b/base/errors"
	"github.com/fsnotify/fsnotify"
)

// watcher re-renders the plot when one of its input files changes.
type watcher struct {
	w     *fsnotify.Watcher
	files map[string]bool
}

// newWatcher watches the directories of the given files, so that
// editors that replace a file by renaming are still seen.
// Empty names and generated datasets are skipped.
func newWatcher(files ...string) (*watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	wt := &watcher{w: fw, files: map[string]bool{}}
	dirs := map[string]bool{}
	for _, f := range files {
		if f == "" || isGenerated(f) {
			continue
		}
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, err
		}
		wt.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			fw.Close()
			return nil, err
		}
		dirs[dir] = true
	}
	return wt, nil
}

// run calls render after every write to a watched file until ctx is
// done. Render errors are logged and do not stop the loop.
func (wt *watcher) run(ctx context.Context, render func() error) error {
	defer wt.w.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-wt.w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write|fsnotify.Create) || !wt.files[filepath.Clean(ev.Name)] {
				continue
			}
			slog.Info("file changed", "file", ev.Name)
			errors.Log(render())
		case err, ok := <-wt.w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch", "err", err)
		}
	}
}

func isGenerated(data string) bool {
	switch strings.ToLower(data) {
	case "blobs", "moons":
		return true
	}
	return false
}
