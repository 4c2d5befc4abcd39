// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package host - runs canvas operations one at a time
//
// each execute call is wrapped in the storage transaction and either
// commits everything it staged or nothing
// the host also owns the logical height, persisted in its own pool
package host

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/canvasd/background"
	"github.com/bitmark-inc/canvasd/canvas"
	"github.com/bitmark-inc/canvasd/counter"
	"github.com/bitmark-inc/canvasd/fault"
	"github.com/bitmark-inc/canvasd/grid"
	"github.com/bitmark-inc/canvasd/message"
	"github.com/bitmark-inc/canvasd/storage"
)

var heightKey = []byte("height")

// Configuration - the host section of the configuration file
type Configuration struct {
	BlockInterval int     `gluamapper:"block_interval" yaml:"block_interval" json:"block_interval"`
	RequestRate   float64 `gluamapper:"request_rate" yaml:"request_rate" json:"request_rate"`
	RequestBurst  int     `gluamapper:"request_burst" yaml:"request_burst" json:"request_burst"`
}

// Canvas - the operations the host sequences
type Canvas interface {
	message.Canvas
	Materialised() ([]grid.Coordinate, error)
	MaterialisedPage(grid.Coordinate, int) ([]grid.Coordinate, error)
}

// Host - serialises every call against one canvas
type Host struct {
	sync.Mutex
	log         *logger.L
	canvas      Canvas
	validator   canvas.Validator
	heights     storage.Handle
	transaction storage.Transaction
	limitLock   sync.RWMutex
	limiter     *rate.Limiter
	interval    time.Duration
	background  *background.T
	stats       counter.Set
}

// New - host over a canvas
//
// heights is the pool holding the logical height, transaction is the
// one that stages all of the canvas pools
func New(configuration Configuration, c Canvas, validator canvas.Validator, heights storage.Handle, transaction storage.Transaction) *Host {
	return &Host{
		log:         logger.New("host"),
		canvas:      c,
		validator:   validator,
		heights:     heights,
		transaction: transaction,
		limiter:     newLimiter(configuration.RequestRate, configuration.RequestBurst),
		interval:    time.Duration(configuration.BlockInterval) * time.Second,
	}
}

// Start - run the block clock if an interval is configured
func (h *Host) Start() {
	if h.interval <= 0 {
		h.log.Info("block clock disabled")
		return
	}
	h.log.Infof("block clock: %s", h.interval)
	h.background = background.Start(background.Processes{NewTicker(h, h.interval)}, nil)
}

// Stop - halt the block clock
func (h *Host) Stop() {
	h.background.Stop()
	h.log.Info("stopped")
	h.log.Flush()
}

// Height - current logical height
func (h *Host) Height() (uint64, error) {
	h.Lock()
	defer h.Unlock()
	return h.height()
}

// internal: must hold lock
func (h *Host) height() (uint64, error) {
	n, _, err := h.heights.GetN(heightKey)
	if nil != err {
		return 0, fault.Storage("get height", err)
	}
	return n, nil
}

// Advance - move the height forward, saturating at the maximum
func (h *Host) Advance(n uint64) (uint64, error) {
	h.Lock()
	defer h.Unlock()

	current, err := h.height()
	if nil != err {
		return 0, err
	}
	next := current + n
	if next < current {
		next = ^uint64(0)
	}
	if err := h.putHeight(next); nil != err {
		return current, err
	}
	h.log.Debugf("height: %d", next)
	return next, nil
}

// SetHeight - pin the height, it can never move backwards
func (h *Host) SetHeight(height uint64) error {
	h.Lock()
	defer h.Unlock()

	current, err := h.height()
	if nil != err {
		return err
	}
	if height < current {
		return fault.HeightDecreased
	}
	if height == current {
		return nil
	}
	return h.putHeight(height)
}

// internal: must hold lock
func (h *Host) putHeight(height uint64) error {
	if err := h.transaction.Begin(); nil != err {
		return err
	}
	if err := h.heights.PutN(heightKey, height); nil != err {
		h.transaction.Abort()
		return fault.Storage("put height", err)
	}
	return h.transaction.Commit()
}

// Instantiate - create the canvas at the current height
func (h *Host) Instantiate(ctx context.Context, sender string, msg *message.InstantiateMsg) (*canvas.Response, error) {
	return h.apply(ctx, "instantiate", sender, func(env canvas.Env) (*canvas.Response, error) {
		return message.Instantiate(h.canvas, env, msg)
	})
}

// Execute - run one execute message at the current height
func (h *Host) Execute(ctx context.Context, sender string, msg *message.ExecuteMsg) (*canvas.Response, error) {
	return h.apply(ctx, msg.Name(), sender, func(env canvas.Env) (*canvas.Response, error) {
		return message.Execute(h.canvas, env, msg)
	})
}

// Query - run a read only query
func (h *Host) Query(ctx context.Context, msg *message.QueryMsg) (interface{}, error) {
	if err := h.admit(ctx); nil != err {
		return nil, err
	}

	h.Lock()
	defer h.Unlock()

	if err := ctx.Err(); nil != err {
		return nil, err
	}

	name := msg.Name()
	result, err := message.Query(h.canvas, msg)
	if nil != err {
		h.stats.Increment(name + ".fail")
		h.log.Debugf("query: %s error: %s", name, err)
		return nil, err
	}
	h.stats.Increment(name + ".ok")
	return result, nil
}

// MaterialisedPage - a page of drawn chunk coordinates starting at start
func (h *Host) MaterialisedPage(start grid.Coordinate, count int) ([]grid.Coordinate, error) {
	h.Lock()
	defer h.Unlock()
	return h.canvas.MaterialisedPage(start, count)
}

// Materialised - coordinates of every chunk drawn so far
func (h *Host) Materialised() ([]grid.Coordinate, error) {
	h.Lock()
	defer h.Unlock()
	return h.canvas.Materialised()
}

// StatNames - counter names in sorted order
func (h *Host) StatNames() []string {
	return h.stats.Names()
}

// Stat - value of one counter, zero if never incremented
func (h *Host) Stat(name string) uint64 {
	return h.stats.Get(name)
}

// run f inside a transaction, commit on success otherwise abort
func (h *Host) apply(ctx context.Context, name string, sender string, f func(canvas.Env) (*canvas.Response, error)) (*canvas.Response, error) {
	if err := h.admit(ctx); nil != err {
		return nil, err
	}

	h.Lock()
	defer h.Unlock()

	if err := ctx.Err(); nil != err {
		return nil, err
	}

	id := uuid.New().String()

	r, err := h.run(id, sender, f)
	if nil != err {
		h.stats.Increment(name + ".fail")
		h.log.Infof("%s: %s rejected: %s", id, name, err)
		return nil, err
	}

	h.stats.Increment(name + ".ok")
	h.log.Debugf("%s: %s ok: %v", id, name, r.Attributes)
	return r, nil
}

// internal: must hold lock
func (h *Host) run(id string, sender string, f func(canvas.Env) (*canvas.Response, error)) (*canvas.Response, error) {
	height, err := h.height()
	if nil != err {
		return nil, err
	}

	sender, err = h.validator.ValidateAddress(sender)
	if nil != err {
		return nil, err
	}

	h.log.Debugf("%s: sender: %s  height: %d", id, sender, height)

	if err := h.transaction.Begin(); nil != err {
		h.log.Errorf("%s: begin error: %s", id, err)
		return nil, err
	}

	r, err := f(canvas.Env{Height: height, Sender: sender})
	if nil != err {
		h.transaction.Abort()
		return nil, err
	}

	if err := h.transaction.Commit(); nil != err {
		h.log.Criticalf("%s: commit error: %s", id, err)
		return nil, err
	}
	return r, nil
}
