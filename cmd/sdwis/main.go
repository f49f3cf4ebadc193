// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

// Command sdwis loads and checks the SDWIS collections behind the dashboard.
//
//	sdwis ingest --dir ./data     replace collections from the EPA CSV exports
//	sdwis seed                    replace collections with the sample dataset
//	sdwis validate                print the data-quality report
//
// Configuration is read the same way as the server (config.yaml, .env,
// environment).
package main

import (
	"os"

	"github.com/tomtom215/speedofwater/internal/config"
	"github.com/tomtom215/speedofwater/internal/logging"
)

func main() {
	root := newRootCmd(&cli{loadConfig: config.Load, out: os.Stdout})
	if err := root.Execute(); err != nil {
		logging.Error().Err(err).Msg("sdwis failed")
		os.Exit(1)
	}
}
