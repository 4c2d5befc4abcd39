// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/canvasd/account"
	"github.com/bitmark-inc/canvasd/fault"
	"github.com/bitmark-inc/canvasd/message"
	"github.com/bitmark-inc/canvasd/storage"
)

func TestInfo(t *testing.T) {
	h := setupReplayHost(t)
	defer storage.Finalise()

	_, err := getInfo(h)
	assert.Equal(t, fault.NotInstantiated, err, "info before instantiate")

	a, _, _ := account.Generate(true)
	admin := a.String()
	_, err = h.Instantiate(context.Background(), admin, &message.InstantiateMsg{
		AdminAddress: admin,
		Cooldown:     5,
		Width:        3,
		Height:       2,
	})
	if nil != err {
		t.Fatalf("instantiate error: %s", err)
	}

	info, err := getInfo(h)
	assert.Nil(t, err, "info")
	assert.Equal(t, admin, info.Config.Admin, "wrong admin")
	assert.Equal(t, uint64(3), info.Dimensions.Width, "wrong width")
	assert.Equal(t, pixelExtent{Width: 48, Height: 32}, info.Pixels, "wrong pixel extent")
	assert.Equal(t, 0, len(info.Chunks), "chunks before any draw")
}
