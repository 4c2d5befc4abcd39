// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/canvasd/host"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// periodically log the operation counters and memory use
func stats(h *host.Host) {

	log := logger.New("stats")

	for {
		height, err := h.Height()
		if nil != err {
			log.Errorf("height error: %s", err)
		}
		log.Infof("height: %d", height)
		for _, name := range h.StatNames() {
			log.Infof("%s: %d", name, h.Stat(name))
		}

		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		a := m.Alloc / mega
		t := m.TotalAlloc / mega
		s := m.Sys / mega
		log.Debugf("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, s)

		time.Sleep(statsDelay)
	}
}
