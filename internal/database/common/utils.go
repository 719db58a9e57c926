package common

import (
	"database/sql"
	"strings"
)

// QueryResult is the generic shape handed to the table renderer: column order
// as reported by the driver plus one map per row.
type QueryResult struct {
	Columns []string
	Rows    []map[string]interface{}
}

// ScanRows drains rows into a QueryResult. []byte values are converted to
// string so drivers that return raw bytes (mysql, sqlite) render the same as
// drivers that return string.
func ScanRows(rows *sql.Rows) (*QueryResult, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &QueryResult{Columns: columns}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		ptrs := make([]interface{}, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		result.Rows = append(result.Rows, row)
	}
	return result, rows.Err()
}

// ParseSQLStatements splits a script on semicolons, ignoring semicolons inside
// quoted literals and dropping line comments and empty statements.
func ParseSQLStatements(script string) []string {
	var statements []string
	var current strings.Builder
	var quote rune

	for _, line := range strings.Split(script, "\n") {
		if quote == 0 && strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		for _, ch := range line {
			switch {
			case quote != 0:
				current.WriteRune(ch)
				if ch == quote {
					quote = 0
				}
			case ch == '\'' || ch == '"' || ch == '`':
				quote = ch
				current.WriteRune(ch)
			case ch == ';':
				if stmt := strings.TrimSpace(current.String()); stmt != "" {
					statements = append(statements, stmt)
				}
				current.Reset()
			default:
				current.WriteRune(ch)
			}
		}
		current.WriteRune('\n')
	}

	if stmt := strings.TrimSpace(current.String()); stmt != "" {
		statements = append(statements, stmt)
	}
	return statements
}
