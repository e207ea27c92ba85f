// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	watchTimeout = 5 * time.Second
)

func newTestChannel() WatcherChannel {
	return WatcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

func TestNewFileWatcherMissingFile(t *testing.T) {
	_, err := newFileWatcher(filepath.Join(os.TempDir(), "avl-replay-no-such-file"), logger.New(category), newTestChannel())
	assert.True(t, os.IsNotExist(err), "actual: %v", err)
}

func TestFileWatcherEvents(t *testing.T) {
	tmp := makeFiles(t, map[string]string{
		"replay.txt": "check\n",
	})
	defer os.RemoveAll(tmp)

	fileName := filepath.Join(tmp, "replay.txt")
	channel := newTestChannel()

	watcher, err := newFileWatcher(fileName, logger.New(category), channel)
	require.NoError(t, err, "new watcher")
	require.NoError(t, watcher.Start(), "start")
	defer watcher.Stop()

	require.NoError(t, ioutil.WriteFile(fileName, []byte("count 0\n"), 0600), "rewrite")
	select {
	case <-channel.change:
	case <-time.After(watchTimeout):
		t.Fatal("no change event")
	}

	require.NoError(t, os.Remove(fileName), "remove")
	select {
	case <-channel.remove:
	case <-time.After(watchTimeout):
		t.Fatal("no remove event")
	}
}

func TestSendEventDiscardsWhenFull(t *testing.T) {
	channel := newTestChannel()
	w := &fileWatcherData{
		log:     logger.New(category),
		channel: channel,
	}

	w.sendEvent(channel.change, "change")
	w.sendEvent(channel.change, "change")
	assert.Equal(t, 1, len(channel.change), "buffered events")
}

func TestWatcherEventClassification(t *testing.T) {
	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Write}), "write")
	assert.True(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Create}), "create")
	assert.False(t, watcherEventFileChange(fsnotify.Event{Name: "a", Op: fsnotify.Chmod}), "chmod")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Remove}), "remove")
	assert.True(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Rename}), "rename")
	assert.False(t, watcherEventFileRemove(fsnotify.Event{Name: "a", Op: fsnotify.Write}), "write")
}
