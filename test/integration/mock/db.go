package mock

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chart-of-accounts/backend/internal/infra/db"
)

type Db struct {
	DbConn *gorm.DB
	models []any
	tables map[string]any
}

// NewDb opens a private in-memory SQLite database and migrates models into
// it. Models are given parents first; reset deletes them in reverse order.
func NewDb(models ...any) *Db {
	db.RegisterSQLiteFunctions()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	dbSQL, err := sql.Open("sqlite", dsn)
	if err != nil {
		panic(err)
	}

	// a single connection keeps the in-memory database alive and serialises access
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: dbConn,
		models: models,
		tables: make(map[string]any, len(models)),
	}

	if err := newDbMock.init(); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return newDbMock
}

func (d *Db) init() error {
	if err := d.DbConn.AutoMigrate(d.models...); err != nil {
		return err
	}

	for _, model := range d.models {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}

		stmt := &gorm.Statement{DB: d.DbConn}
		if err := stmt.Parse(model); err != nil {
			return err
		}
		d.tables[stmt.Schema.Table] = model
	}

	return nil
}

// ClearDB deletes every row and resets auto-increment counters.
func (d *Db) ClearDB() error {
	for i := len(d.models) - 1; i >= 0; i-- {
		model := d.models[i]

		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return err
		}

		stmt := &gorm.Statement{DB: d.DbConn}
		if err := stmt.Parse(model); err != nil {
			return err
		}

		err = d.DbConn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", stmt.Schema.Table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table: sqlite_sequence") {
			return err
		}
	}

	return nil
}

// Close releases the database.
func (d *Db) Close() error {
	sqlDB, err := d.DbConn.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.tables[table]
	return model, ok
}
