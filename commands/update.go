package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/thanh2004nguyen/cosmetics-automation/config"
	"github.com/thanh2004nguyen/cosmetics-automation/registry"
	"github.com/thanh2004nguyen/cosmetics-automation/rows"
)

// Update fetches the complete registry record set and rewrites both
// worksheets of the configured spreadsheet.
func Update(ctx context.Context, cfg config.Config) error {
	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		return fmt.Errorf("--spreadsheet is a required option")
	}

	if strings.TrimSpace(cfg.Credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	google, err := newSheets(ctx, cfg.Credentials)
	if err != nil {
		return err
	}

	spreadsheet, err := getSpreadsheet(google, cfg.SpreadsheetID)
	if err != nil {
		return err
	}

	src := registry.NewClient(cfg.APIURL, cfg.PageSize)
	writer := &googleSheets{
		service:       google,
		spreadsheetId: spreadsheet.SpreadsheetId,
	}

	return update(ctx, src, writer)
}

// update is the fetch -> map -> write pipeline. All fetching completes
// before any worksheet is touched, and the two worksheet writes are
// independent - each outcome is reported on its own and neither masks the
// other.
func update(ctx context.Context, src source, writer sheetWriter) error {
	run := log.WithField("run", uuid.NewString())

	run.Infoln("starting spreadsheet update")

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
		run.WithFields(log.Fields{
			FilteredTab:  skipped,
			FlattenedTab: skipped2,
		}).Warnln("skipped records without a notification code")
	}

	errs := []error{}
	for _, tab := range []struct {
		name  string
		table rows.Table
	}{
		{FilteredTab, filtered},
		{FlattenedTab, flattened},
	} {
		if err := writer.Replace(ctx, tab.name, tab.table.Header, tab.table.Rows); err != nil {
			run.WithField("tab", tab.name).Errorf("worksheet update failed (%v)", err)
			errs = append(errs, err)
			continue
		}

		run.WithFields(log.Fields{
			"tab":  tab.name,
			"rows": len(tab.table.Rows),
		}).Infoln("worksheet updated")
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	run.Infoln("spreadsheet update completed")

	return nil
}
