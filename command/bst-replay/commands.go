// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/exitwithstatus"
)

// setup command handler
//
// commands that need neither the configuration nor a tree, returns
// false when the arguments are a replay to be run
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [command|input-file]\n", program)
		fmt.Printf("\n")
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")
		fmt.Printf("  run [FILE]                 (start)  - replay FILE, or the configured input\n")
		fmt.Printf("                                        a FILE of %q reads standard input\n", "-")
		fmt.Printf("\n")
		fmt.Printf("input is whitespace separated integers:\n")
		fmt.Printf("  N > 0  add N\n")
		fmt.Printf("  N < 0  remove -N\n")
		fmt.Printf("  0      print the final contents and stop\n")
		fmt.Printf("\n")
		exitwithstatus.Exit(1)

	default:
		return false // continue processing
	}
	return true
}

// the input file named on the command line, blank if none
func inputArgument(arguments []string) (string, error) {
	if len(arguments) > 0 {
		switch arguments[0] {
		case "run", "start":
			arguments = arguments[1:]
		}
	}
	switch len(arguments) {
	case 0:
		return "", nil
	case 1:
		return arguments[0], nil
	default:
		return "", fmt.Errorf("only one input file is allowed, %d were given", len(arguments))
	}
}
