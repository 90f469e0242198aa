package sqlgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTableBuild(t *testing.T) {
	stmt, err := CreateTable{
		Database: "grocery",
		Tables:   []string{"edeka24"},
		Columns:  []string{"product_name", "price", "category"},
		Types: TypeMap{
			"product_name": "TEXT",
			"price":        "DECIMAL(8,2)",
			"category":     "JSON",
		},
		IfNotExists: true,
	}.Build()
	require.NoError(t, err)

	want := "CREATE TABLE IF NOT EXISTS grocery.edeka24 (\n" +
		"  `product_name` TEXT,\n" +
		"  `price` DECIMAL(8,2),\n" +
		"  `category` JSON\n" +
		") ENGINE=InnoDB DEFAULT CHARSET=utf8;"
	assert.Equal(t, want, stmt)
}

func TestCreateTableDefaultsAndAutoID(t *testing.T) {
	stmt, err := CreateTable{
		Database: "grocery",
		Tables:   []string{"edeka24"},
		Columns:  []string{"product_name", "unknown_col"},
		Types:    TypeMap{"product_name": "VARCHAR(64)"},
		AutoID:   true,
	}.Build()
	require.NoError(t, err)

	assert.Contains(t, stmt, "CREATE TABLE grocery.edeka24 (")
	assert.Contains(t, stmt, "id BIGINT NOT NULL PRIMARY KEY AUTO_INCREMENT,")
	assert.Contains(t, stmt, "`unknown_col` TEXT", "columns without a mapped type fall back to TEXT")
	assert.Contains(t, stmt, "ENGINE=InnoDB DEFAULT CHARSET=utf8;")
}

func TestCreateTablePrimaryKey(t *testing.T) {
	stmt, err := CreateTable{
		Database:   "grocery",
		Tables:     []string{"edeka24"},
		Columns:    []string{"product_name"},
		PrimaryKey: "product_name",
	}.Build()
	require.NoError(t, err)

	assert.Contains(t, stmt, "  `product_name` TEXT,\n  PRIMARY KEY (`product_name`)\n")
}

func TestCreateTableRejectsTableLists(t *testing.T) {
	_, err := CreateTable{
		Database: "grocery",
		Tables:   []string{"a", "b"},
		Columns:  []string{"c"},
	}.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one table")

	_, err = CreateTable{Database: "grocery", Columns: []string{"c"}}.Build()
	assert.Error(t, err)
}

func TestCreateTableRequiresColumns(t *testing.T) {
	_, err := CreateTable{Database: "grocery", Tables: []string{"edeka24"}}.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one column")
}

func TestInsertRowBuild(t *testing.T) {
	stmt, err := InsertRow{
		Database: "grocery",
		Table:    "edeka24",
		Columns:  []string{"product_name", "price", "fat_in_g", "timestamp"},
		Values: []Literal{
			Text("Milch"),
			Number(1.09),
			Null(),
			DateTime(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)),
		},
	}.Build()
	require.NoError(t, err)

	want := "INSERT INTO grocery.edeka24 (`product_name`, `price`, `fat_in_g`, `timestamp`)\n" +
		`VALUES ("Milch", 1.09, NULL, "2026-03-14 09:30:00");`
	assert.Equal(t, want, stmt)
}

func TestInsertRowLengthMismatch(t *testing.T) {
	_, err := InsertRow{
		Database: "grocery",
		Table:    "edeka24",
		Columns:  []string{"a", "b"},
		Values:   []Literal{Null()},
	}.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 columns but 1 values")
}

func TestInsertRowRequiresColumns(t *testing.T) {
	_, err := InsertRow{Database: "grocery", Table: "edeka24"}.Build()
	assert.Error(t, err)
}

func TestInsertColumnsAppearInCreate(t *testing.T) {
	cols := []string{"product_name", "price", "category"}

	create, err := CreateTable{Database: "grocery", Tables: []string{"edeka24"}, Columns: cols}.Build()
	require.NoError(t, err)

	insert, err := InsertRow{
		Database: "grocery",
		Table:    "edeka24",
		Columns:  cols,
		Values:   []Literal{Text("a"), Number(1), Null()},
	}.Build()
	require.NoError(t, err)

	for _, col := range cols {
		assert.Contains(t, create, "`"+col+"`")
		assert.Contains(t, insert, "`"+col+"`")
	}
}

func TestDropTableBuild(t *testing.T) {
	assert.Equal(t, "DROP TABLE grocery.edeka24;",
		DropTable{Database: "grocery", Table: "edeka24"}.Build())
	assert.Equal(t, "DROP TABLE IF EXISTS grocery.edeka24;",
		DropTable{Database: "grocery", Table: "edeka24", IfExists: true}.Build())
}
