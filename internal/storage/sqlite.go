package storage

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/san-kum/fluxconv/internal/dimension"
	"github.com/san-kum/fluxconv/internal/field"
	"github.com/san-kum/fluxconv/internal/timesel"
)

const sqliteFile = "fields.db"

const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS fields (
		time_name  TEXT NOT NULL,
		time_value REAL NOT NULL,
		name       TEXT NOT NULL,
		class      TEXT NOT NULL,
		dimensions TEXT NOT NULL,
		vals       BLOB NOT NULL,
		PRIMARY KEY (time_name, name)
	)
`

// SQLiteStore keeps every field of a case in <case>/fields.db.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(caseDir string) (*SQLiteStore, error) {
	info, err := os.Stat(caseDir)
	if err != nil {
		return nil, fmt.Errorf("opening case: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening case: %s is not a directory", caseDir)
	}

	dbPath := filepath.Join(caseDir, sqliteFile)
	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating fields table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Times(ctx context.Context) ([]timesel.Instant, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT time_name FROM fields`)
	if err != nil {
		return nil, fmt.Errorf("listing times: %w", err)
	}
	defer rows.Close()

	var times []timesel.Instant
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		if in, ok := timesel.ParseInstant(name); ok {
			times = append(times, in)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	timesel.Sort(times)
	return times, nil
}

func (s *SQLiteStore) ReadField(ctx context.Context, name string, t timesel.Instant) (*field.Field, error) {
	var class, dims string
	var blob []byte
	row := s.db.QueryRowContext(ctx,
		`SELECT class, dimensions, vals FROM fields WHERE time_name = ? AND name = ?`,
		t.Name, name)
	if err := row.Scan(&class, &dims, &blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound(name, t)
		}
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	d, err := dimension.Parse(dims)
	if err != nil {
		return nil, corrupt(name, t, err)
	}
	c, err := field.ParseClass(class)
	if err != nil {
		return nil, corrupt(name, t, err)
	}
	values, err := decodeValues(blob)
	if err != nil {
		return nil, corrupt(name, t, err)
	}

	return &field.Field{
		Name:       name,
		Time:       t,
		Class:      c,
		Dimensions: d,
		Values:     values,
	}, nil
}

func (s *SQLiteStore) WriteField(ctx context.Context, f *field.Field) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO fields (time_name, time_value, name, class, dimensions, vals)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (time_name, name) DO UPDATE SET
			time_value = excluded.time_value,
			class = excluded.class,
			dimensions = excluded.dimensions,
			vals = excluded.vals
	`, f.Time.Name, timeValue(f.Time), f.Name, string(f.Class), f.Dimensions.String(), encodeValues(f.Values))
	if err != nil {
		return fmt.Errorf("writing %s: %w", f.Name, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// timeValue keeps the constant instance storable; REAL cannot hold -Inf
// portably.
func timeValue(t timesel.Instant) float64 {
	if t.IsConstant() {
		return -math.MaxFloat64
	}
	return t.Value
}

func encodeValues(values []float64) []byte {
	buf := make([]byte, len(values)*8)
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

func decodeValues(data []byte) ([]float64, error) {
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("value blob has %d bytes, not a multiple of 8", len(data))
	}
	values := make([]float64, len(data)/8)
	for i := range values {
		values[i] = math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
	}
	return values, nil
}
