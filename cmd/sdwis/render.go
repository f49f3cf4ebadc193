// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package main

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/tomtom215/speedofwater/internal/ingest"
	"github.com/tomtom215/speedofwater/internal/models"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(true)
	table.SetHeader(header)
	return table
}

func renderIngestReport(w io.Writer, r *ingest.Report) {
	table := newTable(w, "Collection", "File", "Rows", "Batches", "Retries", "Duration")
	for _, c := range r.Collections {
		table.Append([]string{
			c.Collection,
			c.File,
			strconv.Itoa(c.Rows),
			strconv.Itoa(c.Batches),
			strconv.Itoa(c.Retries),
			c.Duration.Round(time.Millisecond).String(),
		})
	}
	table.SetFooter([]string{"", "Total", strconv.Itoa(r.TotalRows()), "", "", r.Duration.Round(time.Millisecond).String()})
	table.Render()
}

func renderQualityReport(w io.Writer, r *models.DataQualityReport) {
	_, _ = fmt.Fprintln(w, "Violation records")
	summary := newTable(w, "Metric", "Value")
	summary.AppendBulk([][]string{
		{"Total records", itoa(r.TotalRecords)},
		{"Records with no end date", itoa(r.OpenEndedRecords)},
		{"Active violations", itoa(r.ActiveViolations)},
		{"Resolved violations", itoa(r.ResolvedViolations)},
		{"Unknown status", itoa(r.UnknownViolations)},
		{"Enforcement-only records", itoa(r.EnforcementOnlyRecords)},
		{"Systems with violations", itoa(r.SystemsWithViolations)},
		{"Average violations per system", strconv.FormatFloat(r.AvgViolationsPerSystem, 'f', 1, 64)},
	})
	summary.Render()

	_, _ = fmt.Fprintln(w, "\nStatus distribution")
	statuses := newTable(w, "Status", "Count", "Percent")
	for _, s := range r.StatusDistribution {
		statuses.Append([]string{s.Status, itoa(s.Count), strconv.FormatFloat(s.Percentage, 'f', 1, 64) + "%"})
	}
	statuses.Render()

	_, _ = fmt.Fprintln(w, "\nTop violators")
	violators := newTable(w, "PWSID", "Name", "Violations", "Population")
	for _, v := range r.TopViolators {
		violators.Append([]string{v.PWSID, v.Name, itoa(v.ViolationCount), itoa(v.Population)})
	}
	violators.Render()

	_, _ = fmt.Fprintln(w, "\nGeography")
	geo := newTable(w, "Metric", "Value")
	geo.AppendBulk([][]string{
		{"Geographic records", itoa(r.GeographicRecords)},
		{"Systems without geographic data", itoa(r.SystemsWithoutGeography)},
		{"Geographic rows without system details", itoa(r.GeographyWithoutSystems)},
	})
	geo.Render()

	_, _ = fmt.Fprintln(w, "\nTop counties")
	counties := newTable(w, "County", "Systems")
	for _, c := range r.TopCounties {
		counties.Append([]string{c.County, itoa(c.Systems)})
	}
	counties.Render()
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
