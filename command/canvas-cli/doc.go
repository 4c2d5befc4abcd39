// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// canvas-cli - operate on a canvas database directly
//
// calls go through the same host as the daemon so every execute is
// validated and committed atomically, the daemon must not be running
// on the same database at the same time
//
// example:
//
//	canvas-cli --database=canvas.leveldb --network=testing generate
//	canvas-cli -d canvas.leveldb -n testing instantiate --sender=ADMIN --admin=ADMIN --cooldown=10 --width=4 --height=4
//	canvas-cli -d canvas.leveldb -n testing --height=20 draw --sender=ACCOUNT --chunk-x=0 --chunk-y=0 -x 3 -y 4 --color=red
//	canvas-cli -d canvas.leveldb -n testing chunk -x 0 -y 0
package main
