package db

import (
	"database/sql"
	"log"
	"sync"

	_ "github.com/go-sql-driver/mysql"

	"github.com/2HgO/erino-go/config"
)

var dataDb *sql.DB
var dataDBOnce = &sync.Once{}

func GetDataDBConnection(cfg *config.Config) *sql.DB {
	dataDBOnce.Do(func() {
		// Get a database handle.
		var err error
		dataDb, err = sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal(err)
		}

		pingErr := dataDb.Ping()
		if pingErr != nil {
			log.Fatal(pingErr)
		}
	})

	return dataDb
}
