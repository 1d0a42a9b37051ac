// Package store persists game records: the public address of an
// uploaded audio track together with its parsed MIDI bytes, keyed by
// id. It is deliberately an explicitly constructed client rather than
// ambient process state; build one in main and pass it around.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"git.lost.host/meutraa/arrowfall/internal/storage"
)

var ErrNotFound = errors.New("record not found")

type Record struct {
	ID        int64
	MP3URL    string
	MIDIData  []byte
	CreatedAt time.Time
}

// Client needs exactly two connection parameters: the sqlite DSN for
// the record database and the bucket directory for media files.
type Client struct {
	db     *sql.DB
	bucket *storage.Bucket
}

func NewClient(dsn, bucketDir string) (*Client, error) {
	db, err := sql.Open("sqlite3", dsn)
	if nil != err {
		return nil, fmt.Errorf("unable to open record database: %w", err)
	}

	initStatement := `
	create table if not exists records
	  (
		  id integer not null primary key,
		  mp3_url text not null,
		  midi blob not null,
		  created_at timestamp not null default current_timestamp
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		db.Close()
		return nil, fmt.Errorf("unable to init record database: %w", err)
	}

	// The bucket directory doubles as the public base, so stored
	// addresses resolve directly for a local game.
	bucket, err := storage.NewBucket(bucketDir, bucketDir)
	if nil != err {
		db.Close()
		return nil, err
	}

	return &Client{db: db, bucket: bucket}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

// StoreMedia places a media file in the bucket and returns its public
// address. Storage errors propagate to the caller.
func (c *Client) StoreMedia(r io.Reader, name string) (string, error) {
	return c.bucket.Store(r, name)
}

func (c *Client) CreateRecord(mp3URL string, midiData []byte) (*Record, error) {
	res, err := c.db.Exec(
		"insert into records(mp3_url, midi) values(?, ?)", mp3URL, midiData)
	if nil != err {
		return nil, fmt.Errorf("unable to save record: %w", err)
	}
	id, err := res.LastInsertId()
	if nil != err {
		return nil, err
	}
	return c.Record(id)
}

func (c *Client) Record(id int64) (*Record, error) {
	rec := Record{ID: id}
	err := c.db.QueryRow(
		"select mp3_url, midi, created_at from records where id = ?", id).
		Scan(&rec.MP3URL, &rec.MIDIData, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("record %v: %w", id, ErrNotFound)
	}
	if nil != err {
		return nil, fmt.Errorf("unable to load record %v: %w", id, err)
	}
	return &rec, nil
}
