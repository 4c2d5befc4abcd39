// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// Ticker - advances the height by one every interval
type Ticker struct {
	log      *logger.L
	host     *Host
	interval time.Duration
}

// NewTicker - background process for the block clock
func NewTicker(host *Host, interval time.Duration) *Ticker {
	return &Ticker{
		log:      logger.New("clock"),
		host:     host,
		interval: interval,
	}
}

// Run - background process
func (t *Ticker) Run(args interface{}, shutdown <-chan struct{}) {
	t.log.Info("starting…")

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			if _, err := t.host.Advance(1); nil != err {
				t.log.Errorf("advance error: %s", err)
			}
		}
	}

	t.log.Info("shutting down…")
	t.log.Flush()
}
