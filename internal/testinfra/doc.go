// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

// Package testinfra starts throwaway containers for integration tests.
//
// Every file is behind the integration build tag:
//
//	go test -tags integration ./...
//
// Tests skip themselves when Docker is not reachable.
package testinfra
