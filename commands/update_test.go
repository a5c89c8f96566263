package commands

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thanh2004nguyen/cosmetics-automation/registry"
	"github.com/thanh2004nguyen/cosmetics-automation/rows"
)

type fakeSource struct {
	primary   []registry.Cosmetic
	secondary []registry.Cosmetic
	err       error
}

func (f *fakeSource) FetchAll(ctx context.Context, q registry.Query) ([]registry.Cosmetic, error) {
	if f.err != nil {
		return nil, f.err
	}

	if q == registry.SecondaryQuery {
		return f.secondary, nil
	}

	return f.primary, nil
}

type write struct {
	tab    string
	header []string
	data   [][]string
}

type fakeWriter struct {
	writes []write
	fail   map[string]error
}

func (f *fakeWriter) Replace(ctx context.Context, tab string, header []string, data [][]string) error {
	if err, ok := f.fail[tab]; ok {
		return err
	}

	f.writes = append(f.writes, write{tab, header, data})
	return nil
}

func records(codes ...string) []registry.Cosmetic {
	list := make([]registry.Cosmetic, len(codes))
	for i, code := range codes {
		list[i] = registry.Cosmetic{NotificationCode: code}
	}

	return list
}

func TestUpdateWritesBothWorksheets(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	src := &fakeSource{
		primary:   records("1", "2", "3"),
		secondary: records("4", "5"),
	}
	writer := &fakeWriter{}

	err := update(ctx, src, writer)

	assert.Nil(err)
	assert.Len(writer.writes, 2)

	assert.Equal(FilteredTab, writer.writes[0].tab)
	assert.Equal(rows.FilteredHeader, writer.writes[0].header)
	assert.Len(writer.writes[0].data, 3)

	assert.Equal(FlattenedTab, writer.writes[1].tab)
	assert.Equal(rows.FlattenedHeader, writer.writes[1].header)
	assert.Len(writer.writes[1].data, 2)
}

func TestUpdateWithEmptyRegistryWritesHeaderOnly(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	src := &fakeSource{}
	writer := &fakeWriter{}

	err := update(ctx, src, writer)

	assert.Nil(err)
	assert.Len(writer.writes, 2)
	assert.Len(writer.writes[0].data, 0)
	assert.Len(writer.writes[1].data, 0)
}

func TestUpdateWithFetchErrorWritesNothing(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	src := &fakeSource{
		err: fmt.Errorf("registry unreachable"),
	}
	writer := &fakeWriter{}

	err := update(ctx, src, writer)

	assert.NotNil(err)
	assert.Contains(err.Error(), "registry unreachable")
	assert.Len(writer.writes, 0)
}

func TestUpdateWorksheetWritesAreIndependent(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	src := &fakeSource{
		primary:   records("1"),
		secondary: records("2"),
	}
	writer := &fakeWriter{
		fail: map[string]error{
			FilteredTab: fmt.Errorf("range error"),
		},
	}

	err := update(ctx, src, writer)

	assert.NotNil(err)
	assert.Len(writer.writes, 1)
	assert.Equal(FlattenedTab, writer.writes[0].tab)
}

func TestUpdateSkipsRecordsWithoutNotificationCode(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	src := &fakeSource{
		primary:   records("1", "", "2"),
		secondary: records("", ""),
	}
	writer := &fakeWriter{}

	err := update(ctx, src, writer)

	assert.Nil(err)
	assert.Len(writer.writes[0].data, 2)
	assert.Len(writer.writes[1].data, 0)
}

func TestUpdateIsIdempotent(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	src := &fakeSource{
		primary:   records("1", "2"),
		secondary: records("3"),
	}

	first := &fakeWriter{}
	second := &fakeWriter{}

	assert.Nil(update(ctx, src, first))
	assert.Nil(update(ctx, src, second))

	assert.Equal(first.writes, second.writes)
}
