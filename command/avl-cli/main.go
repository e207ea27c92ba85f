// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/item"
)

type metadata struct {
	keyType   string
	printData bool
	verbose   bool
	log       *logger.L
	e         io.Writer
	w         io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(startLogging, stopLogging)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

// build the application, start and stop bracket every command
func newApp(start func(logger.Configuration) error, stop func()) *cli.App {
	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "explore AVL tree rebalancing"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "key-type, k",
			Value: item.IntegerType,
			Usage: " parse keys as `TYPE` [string|integer]",
		},
		cli.BoolFlag{
			Name:  "data, d",
			Usage: " show values in printed trees",
		},
		cli.StringFlag{
			Name:  "log-directory, l",
			Value: os.TempDir(),
			Usage: " write avl-cli.log into `DIR`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "scenario",
			Usage:     "show a named rebalancing scenario step by step",
			ArgsUsage: "[NAME...]   (default: list the scenarios)",
			Action:    runScenario,
		},
		{
			Name:      "replay",
			Usage:     "apply operation scripts, each to a new tree",
			ArgsUsage: "FILE...",
			Action:    runReplay,
		},
		{
			Name:      "stress",
			Usage:     "random inserts and removes with invariant checking",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "operations, n",
					Value: 100000,
					Usage: " number of operations `COUNT`",
				},
				cli.IntFlag{
					Name:  "range, r",
					Value: 1000,
					Usage: " keys are drawn from 0 to `N`-1",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " random `SEED` [0 = time based]",
				},
				cli.IntFlag{
					Name:  "check-every, c",
					Value: 1,
					Usage: " verify all invariants every `COUNT` operations",
				},
				cli.BoolFlag{
					Name:  "quiet, q",
					Usage: " no progress bar",
				},
			},
			Action: runStress,
		},
		{
			Name:      "dot",
			Usage:     "insert keys then write the tree in Graphviz dot format",
			ArgsUsage: "KEY...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "output, o",
					Value: "",
					Usage: " write to `FILE` instead of standard output",
				},
			},
			Action: runDot,
		},
		{
			Name:   "version",
			Usage:  "display avl-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		keyType := c.GlobalString("key-type")
		if !item.IsValidType(keyType) {
			return fmt.Errorf("key type: %q can only be string/integer", keyType)
		}

		logging := logger.Configuration{
			Directory: c.GlobalString("log-directory"),
			File:      "avl-cli.log",
			Size:      1048576,
			Count:     2,
			Console:   false,
			Levels: map[string]string{
				logger.DefaultTag: "error",
			},
		}
		if c.GlobalBool("verbose") {
			logging.Levels[logger.DefaultTag] = "info"
		}
		if err := start(logging); nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			keyType:   keyType,
			printData: c.GlobalBool("data"),
			verbose:   c.GlobalBool("verbose"),
			log:       logger.New("avl-cli"),
			e:         c.App.ErrWriter,
			w:         c.App.Writer,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			stop()
		}
		return nil
	}

	return app
}

// start logging and the critical fault channel that writes through it
func startLogging(configuration logger.Configuration) error {
	if err := logger.Initialise(configuration); nil != err {
		return err
	}
	return fault.Initialise()
}

// flush the fault channel before the logger closes
func stopLogging() {
	fault.Finalise()
	logger.Finalise()
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
