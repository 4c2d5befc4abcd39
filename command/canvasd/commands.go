// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/canvasd/host"
	"github.com/bitmark-inc/canvasd/message"
)

// setup command handler
//
// commands that cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "start", "run":
		return false // continue processing

	case "instantiate", "init", "info", "i", "replay", "r":
		return false // defer processing until database is loaded

	case "config-test", "cfg":
		return false

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--stats] --config-file=FILE [[command|help] arguments...]", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  instantiate ADMIN COOLDOWN WIDTH HEIGHT [END]\n")
		fmt.Printf("                             (init)   - create the canvas at the current height\n")
		fmt.Printf("                                        WIDTH and HEIGHT are in chunks\n")
		fmt.Printf("\n")

		fmt.Printf("  info                       (i)      - display the canvas state as JSON\n")
		fmt.Printf("\n")

		fmt.Printf("  replay FILE                (r)      - apply a JSON lines ledger, one result per line\n")
		fmt.Printf("                                        FILE of \"-\" reads stdin\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// not reached
	return true
}

// configuration command handler
//
// commands that only need the configuration file
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := arguments[0]

	switch command {
	case "config-test", "cfg":
		printJSON(options)
		return true

	default:
		return false
	}
}

// data command handler
//
// the internal database is open
func processDataCommand(log *logger.L, arguments []string, h *host.Host) bool {

	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "start", "run":
		return false // continue processing

	case "instantiate", "init":
		if len(arguments) < 4 || len(arguments) > 5 {
			exitwithstatus.Message("instantiate requires: ADMIN COOLDOWN WIDTH HEIGHT [END]")
		}
		msg := &message.InstantiateMsg{
			AdminAddress: arguments[0],
			Cooldown:     parseUint(arguments[1], "cooldown"),
			Width:        parseUint(arguments[2], "width"),
			Height:       parseUint(arguments[3], "height"),
		}
		if 5 == len(arguments) {
			end := parseUint(arguments[4], "end height")
			msg.EndHeight = &end
		}

		r, err := h.Instantiate(context.Background(), msg.AdminAddress, msg)
		if nil != err {
			log.Errorf("instantiate error: %s", err)
			exitwithstatus.Message("instantiate error: %s", err)
		}
		printJSON(r)

	case "info", "i":
		info, err := getInfo(h)
		if nil != err {
			exitwithstatus.Message("info error: %s", err)
		}
		printJSON(info)

	case "replay", "r":
		if 1 != len(arguments) {
			exitwithstatus.Message("replay requires: FILE")
		}
		f := os.Stdin
		if "-" != arguments[0] {
			var err error
			f, err = os.Open(arguments[0])
			if nil != err {
				exitwithstatus.Message("replay: open error: %s", err)
			}
			defer f.Close()
		}
		if err := replay(context.Background(), h, f, os.Stdout); nil != err {
			log.Criticalf("replay error: %s", err)
			exitwithstatus.Message("replay error: %s", err)
		}

	default:
		exitwithstatus.Message("error: no such command: %q", command)
	}

	return true
}

func parseUint(s string, name string) uint64 {
	n, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		exitwithstatus.Message("%s: %q is not a number", name, s)
	}
	return n
}

func printJSON(item interface{}) {
	b, err := json.MarshalIndent(item, "", "  ")
	if nil != err {
		exitwithstatus.Message("json error: %s", err)
	}
	fmt.Printf("%s\n", b)
}
