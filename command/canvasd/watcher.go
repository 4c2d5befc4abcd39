// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
)

// fileWatcher - signals when the configuration file is rewritten
type fileWatcher struct {
	log      *logger.L
	watcher  *fsnotify.Watcher
	filePath string
	change   chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		return nil, err
	}

	if _, err := os.Stat(filePath); nil != err {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		watcher:  watcher,
		filePath: filePath,
		change:   make(chan struct{}, 1),
	}, nil
}

// watch the containing directory so editors that replace the file
// are still seen
func (w *fileWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	defer w.watcher.Close()

	if err := w.watcher.Add(filepath.Dir(w.filePath)); nil != err {
		w.log.Errorf("watcher add error: %s", err)
		return
	}

	for {
		select {
		case <-shutdown:
			return

		case err := <-w.watcher.Errors:
			w.log.Errorf("watcher error: %s", err)

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filePath {
				continue
			}
			w.log.Debugf("file event: %v", event)
			if fileChanged(event) {
				w.notify()
			}
		}
	}
}

// drop the event if one is already pending
func (w *fileWatcher) notify() {
	select {
	case w.change <- struct{}{}:
	default:
		w.log.Debug("change already pending")
	}
}

func fileChanged(event fsnotify.Event) bool {
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// limitSetter - the part of the host a reload can change
type limitSetter interface {
	SetRequestLimit(requestRate float64, burst int)
}

// reloader - applies the host limits from a changed configuration file
type reloader struct {
	log      *logger.L
	fileName string
	watcher  *fileWatcher
	host     limitSetter
}

func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			return
		case <-r.watcher.change:
			if err := r.reload(); nil != err {
				r.log.Errorf("reload: %q  error: %s", r.fileName, err)
			}
		}
	}
}

func (r *reloader) reload() error {
	c, err := getConfiguration(r.fileName)
	if nil != err {
		return err
	}
	r.log.Infof("reloaded: %q", r.fileName)
	r.host.SetRequestLimit(c.Host.RequestRate, c.Host.RequestBurst)
	return nil
}
