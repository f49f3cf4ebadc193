// Speed of Water - Drinking Water Compliance Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/speedofwater

package store

import (
	"time"

	"github.com/tomtom215/speedofwater/internal/models"
)

// SampleDataset returns a small, deterministic SDWIS extract for local
// development. Dates are placed relative to the month containing now so the
// monthly trend always has data.
//
// The rows cover every classifier branch: open and addressed violations,
// resolved and archived ones, a malformed end date, an empty-string end
// date, duplicate enforcement rows, and an enforcement-only row. One system
// has no name or population, one has no geography, and one county row
// references a system that does not exist.
func SampleDataset(now time.Time) Dataset {
	base := time.Date(now.UTC().Year(), now.UTC().Month(), 15, 0, 0, 0, 0, time.UTC)
	ago := func(months int) models.Date { return models.DateOf(base.AddDate(0, -months, 0)) }
	agoText := func(months int) models.Date {
		return models.ParseDate(base.AddDate(0, -months, 0).Format("2006-01-02"))
	}
	none := models.Date{}

	system := func(id, name string, pop int64, typ, city string) models.WaterSystem {
		return models.WaterSystem{
			PWSID:      models.Text(id),
			Name:       models.Text(name),
			Population: models.CountOf(pop),
			TypeCode:   models.Text(typ),
			CityName:   models.Text(city),
			StateCode:  "CA",
		}
	}

	type row struct {
		pwsid, id, code, contaminant string
		begin, end                   models.Date
		status, health               string
		action                       string
		actionDate                   models.Date
	}
	rows := []row{
		// Arvin: arsenic MCL with two enforcement rows, a newer monitoring
		// violation, an old resolved MCL, and a sanitary inspection.
		{"CA1510005", "1510005-0001", "2", "1005", ago(30), none, "Addressed", "Y", "NOV", ago(28)},
		{"CA1510005", "1510005-0001", "2", "1005", ago(30), none, "Addressed", "Y", "AO", ago(20)},
		{"CA1510005", "1510005-0002", "3", "1005", ago(5), none, "Unaddressed", "N", "", none},
		{"CA1510005", "1510005-0003", "2", "1005", ago(40), ago(34), "Resolved", "Y", "NOV", ago(39)},
		{"CA1510005", "", "", "", none, none, "", "", "SIA", ago(6)},

		// Tooleville: nitrate, lead and copper, and a public notice.
		{"CA5400567", "5400567-0001", "1", "1040", ago(2), none, "Unaddressed", "Y", "", none},
		{"CA5400567", "5400567-0002", "46", "5000", ago(9), models.ParseDate(""), "Addressed", "Y", "SIE", ago(8)},
		{"CA5400567", "5400567-0003", "75", "", ago(9), ago(7), "Resolved", "N", "", none},

		// Los Angeles: a resolved DBP monitoring violation stored as text
		// dates, and an archived coliform violation with a bad end date.
		{"CA1910067", "1910067-0001", "27", "2950", agoText(14), agoText(13), "Resolved", "N", "", none},
		{"CA1910067", "1910067-0002", "3", "3100", ago(3), models.ParseDate("N/A"), "Archived", "N", "", none},

		{"CA1910033", "1910033-0001", "2", "2950", ago(1), ago(0), "Addressed", "Y", "NOV", ago(0)},
		{"CA3710020", "3710020-0001", "3", "3100", ago(11), ago(10), "Resolved", "N", "", none},
		{"CA4310011", "4310011-0001", "99", "", ago(4), ago(4), "Resolved", "N", "", none},
		{"CA5410001", "5410001-0001", "03", "", ago(7), none, "Unaddressed", "N", "", none},
	}

	violations := make([]models.ViolationRecord, len(rows))
	for i, r := range rows {
		violations[i] = models.ViolationRecord{
			PWSID:                 models.Text(r.pwsid),
			ViolationID:           models.Text(r.id),
			ViolationCode:         models.Code(models.NormalizeCode(r.code)),
			ContaminantCode:       models.Code(models.NormalizeCode(r.contaminant)),
			ComplianceBegin:       r.begin,
			NonComplianceBegin:    r.begin,
			NonComplianceEnd:      r.end,
			Status:                models.Text(r.status),
			HealthBased:           models.Text(r.health),
			EnforcementActionType: models.Text(r.action),
			EnforcementDate:       r.actionDate,
		}
	}

	reference := func(typ, code, desc string) models.ReferenceCode {
		return models.ReferenceCode{
			ValueType:   models.Text(typ),
			Code:        models.Code(models.NormalizeCode(code)),
			Description: models.Text(desc),
		}
	}

	area := func(id, county, city string) models.GeographicArea {
		return models.GeographicArea{
			PWSID:    models.Text(id),
			County:   models.Text(county),
			City:     models.Text(city),
			AreaType: "CN",
		}
	}

	return Dataset{
		Systems: []models.WaterSystem{
			system("CA1910067", "Los Angeles-City, Dept. of Water & Power", 3900000, "CWS", "Los Angeles"),
			system("CA1910033", "Glendale-City, Water Dept.", 196000, "CWS", "Glendale"),
			system("CA3010092", "Irvine Ranch Water District", 422000, "CWS", "Irvine"),
			system("CA3710020", "San Diego, City of", 1400000, "CWS", "San Diego"),
			system("CA4310011", "San Jose Water Company", 1000000, "CWS", "San Jose"),
			system("CA1510005", "Arvin Community Services District", 21000, "CWS", "Arvin"),
			system("CA5400567", "Tooleville Mutual Nonprofit Water", 340, "CWS", "Exeter"),
			{PWSID: "CA5410001"},
		},
		Violations: violations,
		Geography: []models.GeographicArea{
			area("CA1910067", "Los Angeles", "Los Angeles"),
			area("CA1910033", "Los Angeles", "Glendale"),
			area("CA1999999", "Los Angeles", "Pasadena"),
			area("CA3010092", "Orange", "Irvine"),
			area("CA3710020", "San Diego", "San Diego"),
			area("CA1510005", "Kern", "Arvin"),
			area("CA5400567", "Tulare", "Exeter"),
			area("CA5410001", "Tulare", ""),
		},
		References: []models.ReferenceCode{
			reference(models.RefTypeViolation, "01", "MCL, Single Sample"),
			reference(models.RefTypeViolation, "02", "Maximum Contaminant Level Violation, Average"),
			reference(models.RefTypeViolation, "03", "Monitoring, Regular"),
			reference(models.RefTypeViolation, "27", "Monitoring and Reporting (DBP)"),
			reference(models.RefTypeViolation, "46", "Treatment Technique (Lead and Copper Rule)"),
			reference(models.RefTypeViolation, "75", "Public Notification Rule Violation"),
			reference(models.RefTypeContaminant, "1005", "Arsenic"),
			reference(models.RefTypeContaminant, "1040", "Nitrate"),
			reference(models.RefTypeContaminant, "2950", "TTHM"),
			reference(models.RefTypeContaminant, "3100", "Coliform (TCR)"),
			reference(models.RefTypeContaminant, "5000", "Lead and Copper Rule"),
		},
	}
}
