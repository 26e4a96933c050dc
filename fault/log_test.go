// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bst/fault"
)

const (
	dir     = "testing"
	logFile = "testing.log"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      logFile,
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(dir)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func TestInitialiseLifecycle(t *testing.T) {
	// no channel yet: falls back to standard output
	fault.Criticalf("before initialise: %d", 1)

	err := fault.Initialise()
	assert.NoError(t, err, "first initialise")
	defer fault.Finalise()

	err = fault.Initialise()
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")

	fault.Criticalf("critical message: %d", 2)
	data, err := os.ReadFile(filepath.Join(dir, logFile))
	assert.NoError(t, err, "read log file")
	assert.Contains(t, string(data), "critical message: 2")

	// finalise drops the channel so it can be set up again
	fault.Finalise()
	fault.Finalise()
	fault.Criticalf("after finalise: %d", 3)

	err = fault.Initialise()
	assert.NoError(t, err, "initialise after finalise")
}
