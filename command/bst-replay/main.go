// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bst/bst"
	"github.com/bitmark-inc/bst/fault"
	"github.com/bitmark-inc/bst/replay"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	inputFile, err := inputArgument(arguments)
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	configurationFile := ""
	switch len(options["config-file"]) {
	case 0:
	case 1:
		configurationFile = options["config-file"][0]
	default:
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	masterConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command line overrides
	if len(options["verbose"]) > 0 {
		masterConfiguration.Echo = true
		masterConfiguration.Tree = true
	}
	if len(options["quiet"]) > 0 {
		masterConfiguration.Echo = false
	}
	if "" != inputFile {
		masterConfiguration.Input = inputFile
	}

	// start logging
	if err = logger.Initialise(masterConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("shutting down…")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("masterConfiguration: %v", masterConfiguration)

	// ------------------
	// start of real main
	// ------------------

	var in io.Reader = os.Stdin
	if "" != masterConfiguration.Input && "-" != masterConfiguration.Input {
		f, err := os.Open(masterConfiguration.Input)
		if nil != err {
			log.Criticalf("open input: %q  error: %s", masterConfiguration.Input, err)
			exitwithstatus.Message("%s: cannot open input: %q  error: %s", program, masterConfiguration.Input, err)
		}
		defer f.Close()
		in = f
	}
	log.Infof("input: %q  first removal side: %s", masterConfiguration.Input, masterConfiguration.side)

	tree := bst.NewStartingFrom[replay.Key](masterConfiguration.side)
	r := replay.New(tree, os.Stdout, logger.New("replay"), replay.Options{
		Echo:     masterConfiguration.Echo,
		DrawTree: masterConfiguration.Tree,
	})

	terminated, err := r.Run(in)
	log.Infof("terminated: %t  stats: %+v", terminated, r.Stats())
	if nil != err {
		fault.Criticalf("replay of: %q failed: %s", masterConfiguration.Input, err)
		exitwithstatus.Message("%s: replay failed: %s", program, err)
	}
}
