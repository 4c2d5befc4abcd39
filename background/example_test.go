// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/bitmark-inc/canvasd/background"
)

type clock struct {
	height uint64
}

func (state *clock) Run(args interface{}, shutdown <-chan struct{}) {
	fmt.Printf("starting at: %d\n", state.height)
	<-shutdown
	fmt.Printf("stopped\n")
}

func Example() {
	p := background.Start(background.Processes{&clock{height: 7}}, nil)
	p.Stop()
	// Output:
	// starting at: 7
	// stopped
}
