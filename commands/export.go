package commands

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/thanh2004nguyen/cosmetics-automation/config"
	"github.com/thanh2004nguyen/cosmetics-automation/registry"
	"github.com/thanh2004nguyen/cosmetics-automation/rows"
)

// Export fetches the registry record set and writes both worksheets to a
// local .xlsx workbook instead of the Google spreadsheet. No credentials are
// required.
func Export(ctx context.Context, cfg config.Config, file string) error {
	if strings.TrimSpace(file) == "" {
		return fmt.Errorf("--file is a required option")
	}

	src := registry.NewClient(cfg.APIURL, cfg.PageSize)

	primary, err := src.FetchAll(ctx, registry.PrimaryQuery)
	if err != nil {
		return fmt.Errorf("fetching registry records (%w)", err)
	}

	secondary, err := src.FetchAll(ctx, registry.SecondaryQuery)
	if err != nil {
		return fmt.Errorf("fetching business notification records (%w)", err)
	}

	filtered, skipped := rows.FilteredTable(primary)
	flattened, skipped2 := rows.FlattenedTable(secondary)

	if skipped+skipped2 > 0 {
		log.WithFields(log.Fields{
			FilteredTab:  skipped,
			FlattenedTab: skipped2,
		}).Warnln("skipped records without a notification code")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", FilteredTab); err != nil {
		return err
	}

	if err := writeSheet(f, FilteredTab, filtered); err != nil {
		return err
	}

	if _, err := f.NewSheet(FlattenedTab); err != nil {
		return err
	}

	if err := writeSheet(f, FlattenedTab, flattened); err != nil {
		return err
	}

	if err := f.SaveAs(file); err != nil {
		return fmt.Errorf("writing workbook %s (%w)", file, err)
	}

	log.WithFields(log.Fields{
		"file":       file,
		FilteredTab:  len(filtered.Rows),
		FlattenedTab: len(flattened.Rows),
	}).Infoln("exported registry records")

	return nil
}

func writeSheet(f *excelize.File, tab string, table rows.Table) error {
	header := make([]interface{}, len(table.Header))
	for i, v := range table.Header {
		header[i] = v
	}

	if err := f.SetSheetRow(tab, "A1", &header); err != nil {
		return err
	}

	for i, record := range table.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := make([]interface{}, len(record))
		for j, v := range record {
			row[j] = v
		}

		if err := f.SetSheetRow(tab, cell, &row); err != nil {
			return err
		}
	}

	return nil
}
