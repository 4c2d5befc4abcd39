// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canvas_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/canvasd/account"
	"github.com/bitmark-inc/canvasd/canvas"
	"github.com/bitmark-inc/canvasd/grid"
	"github.com/bitmark-inc/canvasd/storage"
)

const (
	testingDirName = "testing"
)

// identifiers on the test network
var (
	admin string
	alice string
	bob   string
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	admin = newIdentifier()
	alice = newIdentifier()
	bob = newIdentifier()

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

func newIdentifier() string {
	a, _, err := account.Generate(true)
	if nil != err {
		panic(err)
	}
	return a.String()
}

func uint64Ptr(n uint64) *uint64 {
	return &n
}

func setupTestCanvas(t *testing.T) *canvas.Canvas {
	if err := storage.InitialiseInMemory(); nil != err {
		t.Fatalf("initialise in memory error: %s", err)
	}
	return canvas.New(canvas.DefaultHandles(), account.Validator{Testing: true})
}

func teardownTestCanvas() {
	storage.Finalise()
}

// run one operation the way the host does: all or nothing
func call(t *testing.T, f func() (*canvas.Response, error)) (*canvas.Response, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("begin error: %s", err)
	}
	r, err := f()
	if nil != err {
		trx.Abort()
		return nil, err
	}
	if err := trx.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return r, nil
}

// a 2×2 chunk canvas created at height 0
func instantiate(t *testing.T, c *canvas.Canvas, cooldownInterval uint64, endHeight *uint64) {
	_, err := call(t, func() (*canvas.Response, error) {
		return c.Instantiate(canvas.Env{Height: 0, Sender: admin}, admin, cooldownInterval, endHeight, grid.Dimensions{Width: 2, Height: 2})
	})
	if nil != err {
		t.Fatalf("instantiate error: %s", err)
	}
}
