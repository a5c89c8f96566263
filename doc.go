/*
Package cosmetics syncs the Ministry of Health cosmetics registration
registry to a Google Sheets spreadsheet.

cosmetics-sheets can be used from the command line but is really intended to
be run from a monthly scheduler to keep two worksheets - a fixed 7-column
projection and a fully flattened view of every record - in step with the
upstream registry.

cosmetics-sheets supports the following commands:

  - update (default), to fetch the complete registry and rewrite both worksheets
  - check, to verify the registry API and spreadsheet credentials without writing
  - export, to write both worksheets to a local .xlsx workbook
  - version, to display the current version
*/
package cosmetics
