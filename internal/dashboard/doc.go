// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

/*
Package dashboard composes record store queries and the compliance
classifier into the payloads served by the HTTP API.

Every operation is read-only. Independent store queries within one call run
concurrently on an errgroup and are combined only after all of them finish;
the first failure cancels the rest and is returned wrapped, so callers can
still match store.ErrNotFound and store.ErrUnavailable with errors.Is.

The statewide regulatory summary and the data-quality report are cached for
api.cache_ttl. Summaries are keyed by (limit, months). Serve runs the cache
janitor and is meant to be supervised:

	svc := dashboard.NewService(recordStore, dashboard.OptionsFromConfig(cfg.API))
	tree.AddAPIService(svc)
	summary, err := svc.RegulatorySummary(ctx, 10, 12)
*/
package dashboard
