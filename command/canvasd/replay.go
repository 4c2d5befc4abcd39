// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/canvasd/canvas"
	"github.com/bitmark-inc/canvasd/fault"
	"github.com/bitmark-inc/canvasd/host"
	"github.com/bitmark-inc/canvasd/message"
)

// one ledger line, exactly one of the messages is present
type entry struct {
	Height      *uint64         `json:"height"`
	Sender      string          `json:"sender"`
	Instantiate json.RawMessage `json:"instantiate"`
	Execute     json.RawMessage `json:"execute"`
	Query       json.RawMessage `json:"query"`
}

type outcome struct {
	Line       int                `json:"line"`
	Height     uint64             `json:"height"`
	Attributes []canvas.Attribute `json:"attributes,omitempty"`
	Result     interface{}        `json:"result,omitempty"`
	Error      string             `json:"error,omitempty"`
	Class      string             `json:"class,omitempty"`
}

func (o *outcome) fail(err error) {
	o.fail(err)
	o.Class = errorClass(err)
}

// broad category of a rejection for ledger consumers
func errorClass(err error) string {
	switch {
	case fault.IsErrStorage(err):
		return "storage"
	case fault.IsErrExists(err):
		return "exists"
	case fault.IsErrInvalid(err):
		return "invalid"
	case fault.IsErrLength(err):
		return "length"
	case fault.IsErrNotFound(err):
		return "not-found"
	case fault.IsErrPermission(err):
		return "permission"
	case fault.IsErrProcess(err):
		return "process"
	case fault.IsErrRecord(err):
		return "record"
	default:
		return "other"
	}
}

const maximumLineLength = 1024 * 1024

// apply each line of a ledger in order and write one outcome per line
//
// rejected calls are reported and replay continues, a storage failure
// stops the replay
func replay(ctx context.Context, h *host.Host, r io.Reader, w io.Writer) error {
	log := logger.New("replay")
	log.Info("starting…")

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maximumLineLength)
	encoder := json.NewEncoder(w)

	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		line := scanner.Bytes()
		if 0 == len(line) {
			continue
		}

		o, fatal := apply(ctx, h, line)
		o.Line = lineNumber
		if err := encoder.Encode(o); nil != err {
			return err
		}
		if "" != o.Error {
			log.Infof("line: %d  error: %s", lineNumber, o.Error)
		}
		if nil != fatal {
			return fatal
		}
	}
	log.Infof("finished: %d lines", lineNumber)
	return scanner.Err()
}

// process a single line, the second result is only set for errors
// that must stop the replay
func apply(ctx context.Context, h *host.Host, line []byte) (*outcome, error) {
	o := &outcome{}

	e := entry{}
	if err := json.Unmarshal(line, &e); nil != err {
		o.fail(fault.InvalidMessage)
		return o, nil
	}

	if nil != e.Height {
		if err := h.SetHeight(*e.Height); nil != err {
			o.fail(err)
			return o, fatalOnly(err)
		}
	}

	height, err := h.Height()
	if nil != err {
		o.fail(err)
		return o, err
	}
	o.Height = height

	present := 0
	for _, m := range []json.RawMessage{e.Instantiate, e.Execute, e.Query} {
		if 0 != len(m) {
			present += 1
		}
	}
	if 1 != present {
		o.fail(fault.InvalidMessage)
		return o, nil
	}

	var r *canvas.Response
	switch {
	case 0 != len(e.Instantiate):
		msg, err := message.DecodeInstantiate(e.Instantiate)
		if nil != err {
			o.fail(err)
			return o, nil
		}
		r, err = h.Instantiate(ctx, e.Sender, msg)
		if nil != err {
			o.fail(err)
			return o, fatalOnly(err)
		}

	case 0 != len(e.Execute):
		msg, err := message.DecodeExecute(e.Execute)
		if nil != err {
			o.fail(err)
			return o, nil
		}
		r, err = h.Execute(ctx, e.Sender, msg)
		if nil != err {
			o.fail(err)
			return o, fatalOnly(err)
		}

	default:
		msg, err := message.DecodeQuery(e.Query)
		if nil != err {
			o.fail(err)
			return o, nil
		}
		result, err := h.Query(ctx, msg)
		if nil != err {
			o.fail(err)
			return o, fatalOnly(err)
		}
		o.Result = result
		return o, nil
	}

	o.Attributes = r.Attributes
	return o, nil
}

func fatalOnly(err error) error {
	if fault.IsErrStorage(err) || context.Canceled == err || context.DeadlineExceeded == err {
		return err
	}
	return nil
}
