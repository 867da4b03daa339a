package driver

import (
	"context"
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ConnectDB opens a database handle for driverName ("mysql" or "sqlite3")
// and checks that it is reachable.
func ConnectDB(ctx context.Context, driverName, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database", driverName)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "ping %s database", driverName)
	}

	log.WithField("driver", driverName).Debug("database connected")
	return db, nil
}
