// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/canvasd/background"
)

type ticker struct {
	ticks    uint64
	finished uint64
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	interval := args.(time.Duration)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(interval):
			atomic.AddUint64(&state.ticks, 1)
		}
	}
	atomic.StoreUint64(&state.finished, 1)
}

func TestStartStop(t *testing.T) {
	one := &ticker{}
	two := &ticker{}

	p := background.Start(background.Processes{one, two}, time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	for i, state := range []*ticker{one, two} {
		assert.Equal(t, uint64(1), atomic.LoadUint64(&state.finished), "%d: did not finish", i)
		assert.NotEqual(t, uint64(0), atomic.LoadUint64(&state.ticks), "%d: did not run", i)
	}

	// no further ticks after Stop returns
	ticks := atomic.LoadUint64(&one.ticks)
	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, ticks, atomic.LoadUint64(&one.ticks), "ticked after stop")
}

func TestStopTwice(t *testing.T) {
	p := background.Start(background.Processes{&ticker{}}, time.Millisecond)
	p.Stop()
	p.Stop()

	var nilHandle *background.T
	nilHandle.Stop()
}
