package db

import (
	"bytes"
	"database/sql/driver"
	"strings"
	"sync"

	sqlitedriver "github.com/glebarez/go-sqlite"
)

var registerFunctions sync.Once

// RegisterSQLiteFunctions replaces SQLite's ASCII-only lower() with a Unicode
// aware one so case-insensitive filters behave as on PostgreSQL. It affects
// connections opened afterwards and is safe to call more than once.
func RegisterSQLiteFunctions() {
	registerFunctions.Do(func() {
		sqlitedriver.MustRegisterDeterministicScalarFunction("lower", 1, lower)
	})
}

func lower(_ *sqlitedriver.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return bytes.ToLower(v), nil
	default:
		return v, nil
	}
}
