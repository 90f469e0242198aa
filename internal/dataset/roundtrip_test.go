package dataset_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp/grocery-harvester/internal/csvstore"
	"github.com/philipp/grocery-harvester/internal/dataset"
	"github.com/philipp/grocery-harvester/internal/product"
)

// A record written by the store and read back through Load keeps its numeric
// fields as numbers and its text fields verbatim.
func TestStoreLoadRoundTrip(t *testing.T) {
	fat := 6.8
	size := 375.0

	rec := &product.Record{
		ProductName:    "Bio Hafer Porridge 3x125g",
		Category:       "Lebensmittel|Frühstück",
		Price:          2.99,
		Fat:            &fat,
		PackageSize:    &size,
		PackageSizeDim: "g",
		Timestamp:      time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	store := csvstore.New()
	require.NoError(t, store.SetDestination(path))
	require.NoError(t, store.Append(rec))

	ds, err := dataset.Load(path)
	require.NoError(t, err)

	require.Equal(t, product.Columns(), ds.Columns)
	require.Len(t, ds.Rows, 1)
	row := ds.Rows[0]

	cell := func(name string) dataset.Cell {
		i := ds.ColumnIndex(name)
		require.GreaterOrEqual(t, i, 0, name)
		return row[i]
	}

	assert.Equal(t, dataset.TextCell("Bio Hafer Porridge 3x125g"), cell("product_name"))
	assert.Equal(t, dataset.TextCell("Lebensmittel|Frühstück"), cell("category"))
	assert.Equal(t, dataset.NumberCell(2.99), cell("price"))
	assert.Equal(t, dataset.NumberCell(6.8), cell("fat_in_g"))
	assert.Equal(t, dataset.NumberCell(375), cell("package_size"))
	assert.Equal(t, dataset.TextCell("g"), cell("package_size_dim"))
	assert.Equal(t, dataset.Cell{Kind: dataset.Empty}, cell("salt_in_g"))
	assert.Equal(t, dataset.TextCell("2026-03-14 09:30:00"), cell("timestamp"))
}
