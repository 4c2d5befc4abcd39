// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/canvasd/account"
	"github.com/bitmark-inc/canvasd/canvas"
	"github.com/bitmark-inc/canvasd/chain"
	"github.com/bitmark-inc/canvasd/host"
	"github.com/bitmark-inc/canvasd/storage"
)

type metadata struct {
	host    *host.Host
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that must not modify the database
var readOnlyCommands = map[string]struct{}{
	"config":        {},
	"dimensions":    {},
	"contract-info": {},
	"cooldown":      {},
	"chunk":         {},
	"chunks":        {},
	"height":        {},
}

func main() {
	logging := logger.Configuration{
		Directory: ".",
		File:      "canvas-cli.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err := logger.Initialise(logging); nil != err {
		fmt.Fprintf(os.Stderr, "logger setup failed with error: %s\n", err)
		os.Exit(1)
	}

	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	logger.Finalise()
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "canvas-cli"
	app.Usage = "inspect and modify a canvas database"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Live,
			Usage: " identifiers belong to `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:  "database, d",
			Value: "",
			Usage: "*canvas LevelDB `DIRECTORY`",
		},
		cli.Uint64Flag{
			Name:  "height",
			Usage: " move the logical height forward to `HEIGHT` before executing",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate an identifier and its private key, nothing is stored",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerate,
		},
		{
			Name:      "instantiate",
			Usage:     "create the canvas",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				senderFlag,
				cli.StringFlag{
					Name:  "admin, a",
					Usage: "*administrator `ACCOUNT`",
				},
				cli.Uint64Flag{
					Name:  "cooldown, c",
					Usage: " blocks between draws of one account `COUNT`",
				},
				cli.Uint64Flag{
					Name:  "width",
					Usage: "*width in chunks `COUNT`",
				},
				cli.Uint64Flag{
					Name:  "height",
					Usage: "*height in chunks `COUNT`",
				},
				endHeightFlag,
			},
			Action: runInstantiate,
		},
		{
			Name:      "draw",
			Usage:     "paint one pixel",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				senderFlag,
				cli.Uint64Flag{
					Name:  "chunk-x",
					Usage: " chunk column `X`",
				},
				cli.Uint64Flag{
					Name:  "chunk-y",
					Usage: " chunk row `Y`",
				},
				cli.Uint64Flag{
					Name:  "x",
					Usage: " pixel column within the chunk `X`",
				},
				cli.Uint64Flag{
					Name:  "y",
					Usage: " pixel row within the chunk `Y`",
				},
				cli.StringFlag{
					Name:  "color, c",
					Usage: "*color name or code `COLOR`",
				},
			},
			Action: runDraw,
		},
		{
			Name:      "update-admin",
			Usage:     "hand the canvas over to another administrator",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				senderFlag,
				cli.StringFlag{
					Name:  "admin, a",
					Usage: "*new administrator `ACCOUNT`",
				},
			},
			Action: runUpdateAdmin,
		},
		{
			Name:      "update-cooldown",
			Usage:     "change the interval between draws",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				senderFlag,
				cli.Uint64Flag{
					Name:  "cooldown, c",
					Usage: " blocks between draws of one account `COUNT`",
				},
			},
			Action: runUpdateCooldown,
		},
		{
			Name:      "update-end-height",
			Usage:     "set or clear the final drawing height",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				senderFlag,
				endHeightFlag,
			},
			Action: runUpdateEndHeight,
		},
		{
			Name:  "advance",
			Usage: "move the logical height forward",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "blocks, b",
					Value: 1,
					Usage: " number of blocks `COUNT`",
				},
			},
			Action: runAdvance,
		},
		{
			Name:   "height",
			Usage:  "display the logical height",
			Action: runHeight,
		},
		{
			Name:   "config",
			Usage:  "display the canvas configuration",
			Action: runConfig,
		},
		{
			Name:   "dimensions",
			Usage:  "display the canvas size in chunks",
			Action: runDimensions,
		},
		{
			Name:   "contract-info",
			Usage:  "display the canvas name and version",
			Action: runContractInfo,
		},
		{
			Name:  "cooldown",
			Usage: "display the height at which an account may next draw",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Usage: "*`ACCOUNT` to look up",
				},
			},
			Action: runCooldown,
		},
		{
			Name:  "chunk",
			Usage: "display one chunk",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "x",
					Usage: " chunk column `X`",
				},
				cli.Uint64Flag{
					Name:  "y",
					Usage: " chunk row `Y`",
				},
			},
			Action: runChunk,
		},
		{
			Name:  "chunks",
			Usage: "list the coordinates of every chunk drawn so far",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Usage: " page size, 0 lists everything `COUNT`",
				},
				cli.Uint64Flag{
					Name:  "start-x",
					Usage: " first chunk column of the page `X`",
				},
				cli.Uint64Flag{
					Name:  "start-y",
					Usage: " first chunk row of the page `Y`",
				},
			},
			Action: runChunks,
		},
		{
			Name:  "version",
			Usage: "display canvas-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// open the database
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		verbose := c.GlobalBool("verbose")

		network := c.GlobalString("network")
		if !chain.Valid(network) {
			return fmt.Errorf("network: %q can only be live/testing/local", network)
		}
		testnet := chain.IsTesting(network)

		m := &metadata{
			testnet: testnet,
			verbose: verbose,
			e:       e,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		// to suppress opening the database for certain commands
		command := c.Args().Get(0)
		switch command {
		case "", "help", "h", "version", "generate":
			return nil
		}

		database := c.GlobalString("database")
		if "" == database {
			return ErrMissingDatabase
		}

		_, readOnly := readOnlyCommands[command]
		if verbose {
			fmt.Fprintf(e, "database: %q  read only: %t\n", database, readOnly)
		}

		if err := storage.Initialise(database, readOnly); nil != err {
			return err
		}

		validator := account.Validator{Testing: testnet}
		theCanvas := canvas.New(canvas.DefaultHandles(), validator)
		m.host = host.New(host.Configuration{}, theCanvas, validator, storage.Pool.Height, storage.DBTransaction())

		if c.GlobalIsSet("height") && !readOnly {
			if err := m.host.SetHeight(c.GlobalUint64("height")); nil != err {
				return err
			}
		}
		return nil
	}

	// close the database
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if !ok || nil == m.host {
			return nil
		}
		if m.verbose {
			fmt.Fprintf(m.e, "closing database\n")
		}
		storage.Finalise()
		return nil
	}

	return app
}
