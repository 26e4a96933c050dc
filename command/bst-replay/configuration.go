// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bst/bst"
	"github.com/bitmark-inc/bst/configuration"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file
	defaultInput         = "-" // standard input
	defaultStartSide     = "left"

	defaultLogDirectory = "log"
	defaultLogFile      = "bst-replay.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// Configuration - the decoded configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Input         string               `gluamapper:"input" json:"input"`
	StartSide     string               `gluamapper:"start_side" json:"start_side"`
	Echo          bool                 `gluamapper:"echo" json:"echo"`
	Tree          bool                 `gluamapper:"tree" json:"tree"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`

	side bst.Side
}

// a new map on every call since parsing decodes into the existing levels
func defaultLogLevels() LoglevelMap {
	return LoglevelMap{
		logger.DefaultTag: "critical",
	}
}

func defaultConfiguration() *Configuration {
	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Input:         defaultInput,
		StartSide:     defaultStartSide,
		Echo:          true,
		Tree:          false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}
}

// will read decode and verify the configuration
//
// a blank file name gives the defaults relative to the current
// directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	options := defaultConfiguration()

	// absolute path to the main directory
	dataDirectory := ""

	if "" == configurationFileName {
		wd, err := os.Getwd()
		if nil != err {
			return nil, err
		}
		dataDirectory = wd
	} else {
		fileName, err := filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}
		dataDirectory, _ = filepath.Split(fileName)

		if err := configuration.ParseConfigurationFile(fileName, options); nil != err {
			return nil, err
		}
	}

	side, err := bst.ParseSide(options.StartSide)
	if nil != err {
		return nil, fmt.Errorf("start_side: %q: %w", options.StartSide, err)
	}
	options.side = side

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// optional absolute paths i.e. blank, standard input or an absolute path
	if "" != options.Input && "-" != options.Input {
		options.Input = ensureAbsolute(options.DataDirectory, options.Input)
	}

	// log file must be a simple name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// if not absolute, prepend the directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
