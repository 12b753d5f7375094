package database

import (
	"sync"

	"CmdBot/core"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var schema = `
CREATE TABLE IF NOT EXISTS guildprefix ( guild_id VARCHAR PRIMARY KEY, prefix VARCHAR NOT NULL );
`

var database *sqlx.DB
var mu sync.RWMutex

func InitializeDatabase() {
	db, err := sqlx.Connect("sqlite3", core.Settings.Database())
	if err != nil {
		core.LogFatal("Failed to open database: ", err)
	}

	// exec the schema or fail; multi-statement Exec behavior varies between
	// database drivers;  pq will exec them all, sqlite3 won't, ymmv
	db.MustExec(schema)
	database = db
}

func Close() {
	database.Close()
}
