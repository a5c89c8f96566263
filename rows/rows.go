package rows

import (
	"strings"

	"github.com/thanh2004nguyen/cosmetics-automation/registry"
)

// Separator between serialized entries of a repeated group (packages,
// shades) within a single cell.
const separator = ", "

// FilteredHeader is the fixed column set of the primary worksheet.
var FilteredHeader = []string{
	"nameCosmeticHeb",
	"nameCosmeticEng",
	"notificationCode",
	"importTrack",
	"rpCorporation",
	"manufacturer",
	"importer",
}

// FlattenedHeader is the full column set of the secondary worksheet, base
// columns first, with the repeated groups serialized into single cells.
var FlattenedHeader = []string{
	"notificationCode",
	"importTrack",
	"rpCorporation",
	"manufacturer",
	"importer",
	"nameCosmeticHeb",
	"nameCosmeticEng",
	"licenseNum",
	"expDate",
	"packages",
	"shades",
}

// Table is a header row plus data rows ready to be written to a worksheet.
type Table struct {
	Header []string
	Rows   [][]string
}

// Filtered projects a record onto the primary worksheet's fixed 7 columns.
func Filtered(c registry.Cosmetic) []string {
	return []string{
		c.NameCosmeticHeb,
		c.NameCosmeticEng,
		c.NotificationCode,
		c.ImportTrack,
		c.RpCorporation,
		c.Manufacturer,
		c.Importer,
	}
}

// Flattened renders a record as a single full-field row, with the packages
// and shades groups joined into one cell each. Empty groups render as empty
// strings.
func Flattened(c registry.Cosmetic) []string {
	return []string{
		c.NotificationCode,
		c.ImportTrack,
		c.RpCorporation,
		c.Manufacturer,
		c.Importer,
		c.NameCosmeticHeb,
		c.NameCosmeticEng,
		c.LicenseNum,
		c.ExpDate,
		Packages(c.Packages),
		Shades(c.Shades),
	}
}

// Packages serializes a package list as 'packageName quantity measurementDesc'
// entries joined by the group separator. Entries with no content at all are
// omitted.
func Packages(packages []registry.Package) string {
	formatted := []string{}

	for _, pkg := range packages {
		parts := []string{}
		for _, part := range []string{pkg.PackageName, string(pkg.Quantity), pkg.MeasurementDesc} {
			if strings.TrimSpace(part) != "" {
				parts = append(parts, strings.TrimSpace(part))
			}
		}

		if len(parts) > 0 {
			formatted = append(formatted, strings.Join(parts, " "))
		}
	}

	return strings.Join(formatted, separator)
}

// Shades serializes a shade list as the shade names joined by the group
// separator, skipping unnamed entries.
func Shades(shades []registry.Shade) string {
	names := []string{}

	for _, shade := range shades {
		if strings.TrimSpace(shade.ShadeName) != "" {
			names = append(names, strings.TrimSpace(shade.ShadeName))
		}
	}

	return strings.Join(names, separator)
}

// FilteredTable maps records to the primary worksheet table, preserving
// fetch order. Records without a notification code are skipped; the count of
// skipped records is returned alongside the table.
func FilteredTable(records []registry.Cosmetic) (Table, int) {
	return makeTable(records, FilteredHeader, Filtered)
}

// FlattenedTable maps records to the secondary worksheet table, preserving
// fetch order. Records without a notification code are skipped; the count of
// skipped records is returned alongside the table.
func FlattenedTable(records []registry.Cosmetic) (Table, int) {
	return makeTable(records, FlattenedHeader, Flattened)
}

func makeTable(records []registry.Cosmetic, header []string, mapper func(registry.Cosmetic) []string) (Table, int) {
	table := Table{
		Header: header,
		Rows:   [][]string{},
	}

	skipped := 0
	for _, record := range records {
		if strings.TrimSpace(record.NotificationCode) == "" {
			skipped++
			continue
		}

		table.Rows = append(table.Rows, mapper(record))
	}

	return table, skipped
}
