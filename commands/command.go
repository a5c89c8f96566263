package commands

import (
	"context"

	"github.com/thanh2004nguyen/cosmetics-automation/registry"
)

const APP = "cosmetics-sheets"

const (
	// FilteredTab is the worksheet holding the fixed 7-column projection.
	FilteredTab = "Sheet1_Filtered"

	// FlattenedTab is the worksheet holding the full flattened records.
	FlattenedTab = "Sheet2_AllColumns"
)

// source is the registry capability consumed by commands, narrowed so tests
// can substitute an in-memory fake.
type source interface {
	FetchAll(ctx context.Context, q registry.Query) ([]registry.Cosmetic, error)
}

// sheetWriter replaces the entire contents of a worksheet with a header row
// plus data rows.
type sheetWriter interface {
	Replace(ctx context.Context, tab string, header []string, data [][]string) error
}
