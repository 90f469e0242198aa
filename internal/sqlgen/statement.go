package sqlgen

import (
	"fmt"
	"strings"
)

// TypeMap maps a column name to its SQL type text.
type TypeMap map[string]string

const (
	defaultEngine  = "InnoDB"
	defaultCharset = "utf8"

	// defaultColumnType is used for columns absent from the type map.
	defaultColumnType = "TEXT"
)

// CreateTable builds a CREATE TABLE statement. CREATE only supports a
// single target table; Tables exists so a caller holding a table list gets
// an explicit error instead of a malformed statement.
type CreateTable struct {
	Database    string
	Tables      []string
	Columns     []string
	Types       TypeMap
	IfNotExists bool
	Engine      string // defaults to InnoDB
	Charset     string // defaults to utf8
	PrimaryKey  string
	AutoID      bool // add an auto-incrementing id primary key column
}

// Build returns the statement text.
func (c CreateTable) Build() (string, error) {
	if len(c.Tables) != 1 {
		return "", fmt.Errorf("CREATE targets exactly one table, got %d", len(c.Tables))
	}
	if len(c.Columns) == 0 {
		return "", fmt.Errorf("CREATE requires at least one column")
	}

	engine := c.Engine
	if engine == "" {
		engine = defaultEngine
	}
	charset := c.Charset
	if charset == "" {
		charset = defaultCharset
	}

	var b strings.Builder
	b.WriteString("CREATE TABLE ")
	if c.IfNotExists {
		b.WriteString("IF NOT EXISTS ")
	}
	fmt.Fprintf(&b, "%s.%s (\n", c.Database, c.Tables[0])

	if c.AutoID {
		b.WriteString("  id BIGINT NOT NULL PRIMARY KEY AUTO_INCREMENT,\n")
	}
	for i, col := range c.Columns {
		colType := defaultColumnType
		if t, ok := c.Types[col]; ok {
			colType = t
		}
		fmt.Fprintf(&b, "  `%s` %s", col, colType)
		if i < len(c.Columns)-1 || c.PrimaryKey != "" {
			b.WriteByte(',')
		}
		b.WriteByte('\n')
	}
	if c.PrimaryKey != "" {
		fmt.Fprintf(&b, "  PRIMARY KEY (`%s`)\n", c.PrimaryKey)
	}
	fmt.Fprintf(&b, ") ENGINE=%s DEFAULT CHARSET=%s;", engine, charset)

	return b.String(), nil
}

// InsertRow builds an INSERT statement for one row of literal values.
type InsertRow struct {
	Database string
	Table    string
	Columns  []string
	Values   []Literal
}

// Build returns the statement text. The value list must match the column
// list position for position.
func (r InsertRow) Build() (string, error) {
	if len(r.Columns) == 0 {
		return "", fmt.Errorf("INSERT requires at least one column")
	}
	if len(r.Values) != len(r.Columns) {
		return "", fmt.Errorf("INSERT has %d columns but %d values", len(r.Columns), len(r.Values))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s.%s (", r.Database, r.Table)
	for i, col := range r.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "`%s`", col)
	}
	b.WriteString(")\nVALUES (")
	for i, v := range r.Values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.Render())
	}
	b.WriteString(");")

	return b.String(), nil
}

// DropTable builds a DROP TABLE statement.
type DropTable struct {
	Database string
	Table    string
	IfExists bool
}

// Build returns the statement text.
func (d DropTable) Build() string {
	if d.IfExists {
		return fmt.Sprintf("DROP TABLE IF EXISTS %s.%s;", d.Database, d.Table)
	}
	return fmt.Sprintf("DROP TABLE %s.%s;", d.Database, d.Table)
}
