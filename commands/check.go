package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/thanh2004nguyen/cosmetics-automation/config"
	"github.com/thanh2004nguyen/cosmetics-automation/registry"
)

// Check verifies connectivity to the registry API and, if credentials are
// present, to the spreadsheet. Nothing is written.
func Check(ctx context.Context, cfg config.Config) error {
	src := registry.NewClient(cfg.APIURL, cfg.PageSize)

	for _, q := range []struct {
		name  string
		query registry.Query
	}{
		{FilteredTab, registry.PrimaryQuery},
		{FlattenedTab, registry.SecondaryQuery},
	} {
		page, err := src.FetchPage(ctx, q.query, 1, 5)
		if err != nil {
			return fmt.Errorf("registry API check failed for %s (%w)", q.name, err)
		}

		log.WithFields(log.Fields{
			"tab":       q.name,
			"totalRows": page.TotalRows,
			"sampled":   len(page.Cosmetics),
		}).Infoln("registry API reachable")
	}

	if strings.TrimSpace(cfg.SpreadsheetID) == "" {
		log.Warnln("no spreadsheet ID configured - skipping spreadsheet check")
		return nil
	}

	if _, err := os.Stat(cfg.Credentials); err != nil {
		log.WithField("credentials", cfg.Credentials).Warnln("credentials file not found - skipping spreadsheet check")
		return nil
	}

	google, err := newSheets(ctx, cfg.Credentials)
	if err != nil {
		return err
	}

	spreadsheet, err := getSpreadsheet(google, cfg.SpreadsheetID)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"spreadsheet": spreadsheet.SpreadsheetId,
		"title":       spreadsheet.Properties.Title,
	}).Infoln("spreadsheet reachable")

	return nil
}
