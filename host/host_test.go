// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/canvasd/account"
	"github.com/bitmark-inc/canvasd/background"
	"github.com/bitmark-inc/canvasd/canvas"
	"github.com/bitmark-inc/canvasd/fault"
	"github.com/bitmark-inc/canvasd/host"
	"github.com/bitmark-inc/canvasd/message"
	"github.com/bitmark-inc/canvasd/pixel"
	"github.com/bitmark-inc/canvasd/storage"
	"github.com/bitmark-inc/canvasd/storage/mocks"
)

func instantiate(t *testing.T, h *host.Host, cooldownInterval uint64) {
	_, err := h.Instantiate(context.Background(), admin, &message.InstantiateMsg{
		AdminAddress: admin,
		Cooldown:     cooldownInterval,
		Width:        2,
		Height:       2,
	})
	if nil != err {
		t.Fatalf("instantiate error: %s", err)
	}
}

func drawMsg(x uint64, color pixel.Color) *message.ExecuteMsg {
	return &message.ExecuteMsg{
		Draw: &message.Draw{X: x, Y: 0, Color: color},
	}
}

func TestHeight(t *testing.T) {
	h := setupTestHost(t, host.Configuration{})
	defer teardownTestHost()

	n, err := h.Height()
	assert.Nil(t, err, "height")
	assert.Equal(t, uint64(0), n, "wrong initial height")

	n, err = h.Advance(5)
	assert.Nil(t, err, "advance")
	assert.Equal(t, uint64(5), n, "wrong height")

	assert.Nil(t, h.SetHeight(5), "same height")
	assert.Nil(t, h.SetHeight(40), "forward")
	assert.Equal(t, fault.HeightDecreased, h.SetHeight(39), "backwards")

	n, _ = h.Height()
	assert.Equal(t, uint64(40), n, "wrong height")

	// persisted in its pool
	stored, found, _ := storage.Pool.Height.GetN([]byte("height"))
	assert.True(t, found, "height not stored")
	assert.Equal(t, uint64(40), stored, "wrong stored height")

	assert.Nil(t, h.SetHeight(^uint64(0)-1), "near maximum")
	n, _ = h.Advance(10)
	assert.Equal(t, ^uint64(0), n, "height wrapped")
}

func TestExecuteUsesHostHeight(t *testing.T) {
	h := setupTestHost(t, host.Configuration{})
	defer teardownTestHost()

	instantiate(t, h, 10)
	_ = h.SetHeight(100)

	r, err := h.Execute(context.Background(), alice, drawMsg(0, pixel.Red))
	assert.Nil(t, err, "draw")
	assert.Equal(t, "draw", r.Attribute("action"), "wrong attribute")

	result, err := h.Query(context.Background(), &message.QueryMsg{GetCooldown: &message.GetCooldown{Address: alice}})
	assert.Nil(t, err, "query")
	assert.Equal(t, &message.CooldownResponse{CurrentCooldown: 110}, result, "wrong cooldown")

	_, err = h.Execute(context.Background(), alice, drawMsg(1, pixel.Red))
	assert.Equal(t, fault.StillOnCooldown, err, "wrong error")

	_, _ = h.Advance(10)
	_, err = h.Execute(context.Background(), alice, drawMsg(1, pixel.Red))
	assert.Nil(t, err, "draw after cooldown")
}

func TestRejectedCallLeavesNoTrace(t *testing.T) {
	h := setupTestHost(t, host.Configuration{})
	defer teardownTestHost()

	instantiate(t, h, 0)

	_, err := h.Execute(context.Background(), alice, drawMsg(0, pixel.Color(99)))
	assert.Equal(t, fault.InvalidColor, err, "wrong error")

	chunks, err := h.Materialised()
	assert.Nil(t, err, "materialised")
	assert.Equal(t, 0, len(chunks), "rejected draw stored a chunk")

	// transaction is free for the next call
	_, err = h.Execute(context.Background(), alice, drawMsg(0, pixel.Red))
	assert.Nil(t, err, "next call")

	assert.Equal(t, uint64(1), h.Stat("draw.fail"), "wrong failure count")
	assert.Equal(t, uint64(1), h.Stat("draw.ok"), "wrong success count")
	assert.Equal(t, uint64(1), h.Stat("instantiate.ok"), "wrong instantiate count")
	assert.Equal(t, []string{"draw.fail", "draw.ok", "instantiate.ok"}, h.StatNames(), "wrong names")
}

func TestSenderIsValidated(t *testing.T) {
	h := setupTestHost(t, host.Configuration{})
	defer teardownTestHost()

	instantiate(t, h, 0)

	_, err := h.Execute(context.Background(), "bogus!", drawMsg(0, pixel.Red))
	assert.Equal(t, fault.InvalidAddress, err, "wrong error")

	// the normalised form is recorded as the painter
	_, err = h.Execute(context.Background(), " "+alice+"\n", drawMsg(0, pixel.Red))
	assert.Nil(t, err, "draw")

	result, _ := h.Query(context.Background(), &message.QueryMsg{GetChunk: &message.GetChunk{X: 0, Y: 0}})
	chunk := result.(*message.ChunkResponse)
	assert.Equal(t, alice, chunk.Grid[0][0].Painter, "painter not normalised")
}

func TestAdminThroughHost(t *testing.T) {
	h := setupTestHost(t, host.Configuration{})
	defer teardownTestHost()

	instantiate(t, h, 0)
	_ = h.SetHeight(10)

	msg := &message.ExecuteMsg{UpdateEndHeight: &message.UpdateEndHeight{NewEndHeight: nil}}
	_, err := h.Execute(context.Background(), alice, msg)
	assert.Equal(t, fault.Unauthorized, err, "wrong error")

	end := uint64(10)
	msg = &message.ExecuteMsg{UpdateEndHeight: &message.UpdateEndHeight{NewEndHeight: &end}}
	_, err = h.Execute(context.Background(), admin, msg)
	assert.Equal(t, fault.InvalidEndHeight, err, "wrong error")

	end = 11
	_, err = h.Execute(context.Background(), admin, msg)
	assert.Nil(t, err, "update end height")

	_, _ = h.Advance(2)
	_, err = h.Execute(context.Background(), alice, drawMsg(0, pixel.Red))
	assert.Equal(t, fault.EndHeightReached, err, "wrong error")
}

func TestCommitFailureIsReported(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	if err := storage.InitialiseInMemory(); nil != err {
		t.Fatalf("initialise in memory error: %s", err)
	}
	defer storage.Finalise()

	validator := account.Validator{Testing: true}
	c := canvas.New(canvas.DefaultHandles(), validator)

	// stage through the real transaction, fail the commit
	shared := storage.DBTransaction()
	writeErr := fault.Storage("commit", errors.New("disk full"))
	trx := mocks.NewMockTransaction(ctl)
	trx.EXPECT().Begin().DoAndReturn(shared.Begin).Times(1)
	trx.EXPECT().Commit().DoAndReturn(func() error {
		shared.Abort()
		return writeErr
	}).Times(1)

	h := host.New(host.Configuration{}, c, validator, storage.Pool.Height, trx)
	_, err := h.Instantiate(context.Background(), admin, &message.InstantiateMsg{AdminAddress: admin, Width: 1, Height: 1})
	assert.Equal(t, writeErr, err, "wrong error")
	assert.True(t, fault.IsErrStorage(err), "not a storage error")

	_, err = c.GetConfig()
	assert.Equal(t, fault.NotInstantiated, err, "failed commit left state")
}

func TestRateLimit(t *testing.T) {
	h := setupTestHost(t, host.Configuration{RequestRate: 0.001, RequestBurst: 1})
	defer teardownTestHost()

	q := &message.QueryMsg{GetChunk: &message.GetChunk{}}

	_, err := h.Query(context.Background(), q)
	assert.Nil(t, err, "first request within burst")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = h.Query(ctx, q)
	assert.Equal(t, context.DeadlineExceeded, err, "wrong error")
	assert.True(t, time.Since(start) < time.Second, "did not honour context")
}

func TestSetRequestLimit(t *testing.T) {
	h := setupTestHost(t, host.Configuration{RequestRate: 0.001, RequestBurst: 1})
	defer teardownTestHost()

	q := &message.QueryMsg{GetChunk: &message.GetChunk{}}

	_, err := h.Query(context.Background(), q)
	assert.Nil(t, err, "first request within burst")

	h.SetRequestLimit(0, 0)

	for i := 0; i < 5; i += 1 {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		_, err = h.Query(ctx, q)
		cancel()
		assert.Nil(t, err, "unlimited request")
	}
}

func TestCancelledContext(t *testing.T) {
	h := setupTestHost(t, host.Configuration{})
	defer teardownTestHost()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Instantiate(ctx, admin, &message.InstantiateMsg{AdminAddress: admin, Width: 1, Height: 1})
	assert.Equal(t, context.Canceled, err, "wrong error")
}

func TestTicker(t *testing.T) {
	h := setupTestHost(t, host.Configuration{})
	defer teardownTestHost()

	p := background.Start(background.Processes{host.NewTicker(h, 2*time.Millisecond)}, nil)
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	n, err := h.Height()
	assert.Nil(t, err, "height")
	assert.True(t, n > 0, "clock did not tick")

	// stopped clock stays put
	time.Sleep(10 * time.Millisecond)
	after, _ := h.Height()
	assert.Equal(t, n, after, "ticked after stop")
}

func TestStartStopWithoutClock(t *testing.T) {
	h := setupTestHost(t, host.Configuration{BlockInterval: 0})
	defer teardownTestHost()

	h.Start()
	h.Stop()
}
