package storage

import (
	"database/sql"

	_ "github.com/lib/pq"
)

type DB struct {
	Conn *sql.DB
}

func NewDB(conn *sql.DB) *DB {
	return &DB{Conn: conn}
}

// Version возвращает версию сервера БД. Используется эндпоинтом /db_version.
func (db *DB) Version() (string, error) {
	var version string
	err := db.Conn.QueryRow("SELECT version()").Scan(&version)
	return version, err
}
