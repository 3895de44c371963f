package emitter

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"iter"
	"net/url"

	_ "github.com/mattn/go-sqlite3"

	"github.com/anyseat/go-anyseat-places"
)

// SQLiteSchema is the table `SQLiteEmitter` reads from. The images column holds a JSON array of strings.
const SQLiteSchema = `CREATE TABLE IF NOT EXISTS places (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL DEFAULT '',
	type TEXT NOT NULL,
	latitude REAL NOT NULL,
	longitude REAL NOT NULL,
	address TEXT NOT NULL DEFAULT '',
	description TEXT NOT NULL DEFAULT '',
	images TEXT NOT NULL DEFAULT '[]',
	wifi INTEGER NOT NULL DEFAULT 0,
	power INTEGER NOT NULL DEFAULT 0
)`

const sqlite_select = `SELECT id, name, type, latitude, longitude, address, description, images, wifi, power FROM places ORDER BY rowid ASC`

// SQLiteEmitter reads places from the "places" table of a SQLite database, opened read-only.
//
//	sqlite3:///usr/local/data/anyseat/places.db
type SQLiteEmitter struct {
	Emitter
	db *sql.DB
}

func init() {

	ctx := context.Background()
	err := RegisterEmitter(ctx, "sqlite3", NewSQLiteEmitter)

	if err != nil {
		panic(err)
	}
}

func NewSQLiteEmitter(ctx context.Context, uri string) (Emitter, error) {

	u, err := url.Parse(uri)

	if err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("file:%s?mode=ro", u.Path)

	db, err := sql.Open("sqlite3", dsn)

	if err != nil {
		return nil, fmt.Errorf("Failed to open database, %w", err)
	}

	err = db.PingContext(ctx)

	if err != nil {
		db.Close()
		return nil, fmt.Errorf("Failed to ping database, %w", err)
	}

	e := &SQLiteEmitter{
		db: db,
	}

	return e, nil
}

func (e *SQLiteEmitter) Emit(ctx context.Context) iter.Seq2[*places.Place, error] {

	return func(yield func(*places.Place, error) bool) {

		rows, err := e.db.QueryContext(ctx, sqlite_select)

		if err != nil {
			yield(nil, fmt.Errorf("Failed to query places, %w", err))
			return
		}

		defer rows.Close()

		for rows.Next() {

			pl := &places.Place{}

			var str_type string
			var str_images string

			err := rows.Scan(
				&pl.Id,
				&pl.Name,
				&str_type,
				&pl.Coordinates.Lat,
				&pl.Coordinates.Lng,
				&pl.Address,
				&pl.Description,
				&str_images,
				&pl.WifiAvailable,
				&pl.PowerOutlets,
			)

			if err != nil {

				if !yield(nil, fmt.Errorf("Failed to scan row, %w", err)) {
					return
				}

				continue
			}

			pl.Type = places.PlaceType(str_type)

			if str_images != "" {

				err = json.Unmarshal([]byte(str_images), &pl.Images)

				if err != nil {

					if !yield(nil, fmt.Errorf("Failed to decode images for %s, %w", pl.Id, err)) {
						return
					}

					continue
				}
			}

			if !yield(pl, nil) {
				return
			}
		}

		err = rows.Err()

		if err != nil {
			yield(nil, err)
		}
	}
}

func (e *SQLiteEmitter) Close() error {
	return e.db.Close()
}
