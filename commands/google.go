package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const SHEETS = "https://www.googleapis.com/auth/spreadsheets"

// authorize builds an HTTP client from a service account credentials file.
// The credentials are treated as an opaque blob - anything google can't
// parse is surfaced as an authorization error.
func authorize(ctx context.Context, credentials string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	config, err := google.JWTConfigFromJSON(b, SHEETS)
	if err != nil {
		return nil, err
	}

	return config.Client(ctx), nil
}

func newSheets(ctx context.Context, credentials string) (*sheets.Service, error) {
	client, err := authorize(ctx, credentials)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%w)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return google, nil
}

func getSpreadsheet(google *sheets.Service, id string) (*sheets.Spreadsheet, error) {
	spreadsheet, err := google.Spreadsheets.Get(id).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%v)", err)
	}

	return spreadsheet, nil
}

func clear(google *sheets.Service, spreadsheetId string, ranges []string, ctx context.Context) error {
	rq := sheets.BatchClearValuesRequest{
		Ranges: ranges,
	}

	if _, err := google.Spreadsheets.Values.BatchClear(spreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return err
	}

	return nil
}

// googleSheets is the sheetWriter implementation backed by the Sheets v4
// values API.
type googleSheets struct {
	service       *sheets.Service
	spreadsheetId string
}

// Replace clears the worksheet and rewrites it with the header row followed
// by the data rows. Values are written 'RAW' so that rerunning against an
// unchanged record set leaves the worksheet byte-identical.
func (g *googleSheets) Replace(ctx context.Context, tab string, header []string, data [][]string) error {
	if err := clear(g.service, g.spreadsheetId, []string{tab}, ctx); err != nil {
		return fmt.Errorf("clearing worksheet %s (%w)", tab, err)
	}

	values := make([][]interface{}, 0, len(data)+1)

	row := make([]interface{}, len(header))
	for i, v := range header {
		row[i] = v
	}
	values = append(values, row)

	for _, record := range data {
		row := make([]interface{}, len(record))
		for i, v := range record {
			row[i] = v
		}
		values = append(values, row)
	}

	rq := sheets.ValueRange{
		Range:  fmt.Sprintf("%s!A1", tab),
		Values: values,
	}

	if _, err := g.service.Spreadsheets.Values.Update(g.spreadsheetId, rq.Range, &rq).
		ValueInputOption("RAW").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("writing worksheet %s (%w)", tab, err)
	}

	return nil
}
