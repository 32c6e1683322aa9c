package dbx

import (
	"database/sql"
	"fmt"
	"time"
)

// TimeLayout is the fixed-width UTC layout timestamps are stored with in
// SQLite, so lexical order equals chronological order.
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// FormatTime renders t for storage.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime reads a timestamp written by FormatTime. RFC 3339 values written
// by other tools are accepted too.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, s)
	}
	return t.UTC(), err
}

// NullString maps "" to SQL NULL.
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// ScanTime returns a sql.Scanner that parses a stored timestamp into t.
// NULL leaves t zero.
func ScanTime(t *time.Time) sql.Scanner { return (*timeScanner)(t) }

type timeScanner time.Time

func (ts *timeScanner) Scan(src any) error {
	var (
		t   time.Time
		err error
	)
	switch v := src.(type) {
	case nil:
	case string:
		t, err = ParseTime(v)
	case []byte:
		t, err = ParseTime(string(v))
	case time.Time:
		t = v.UTC()
	default:
		return fmt.Errorf("cannot scan %T into time", src)
	}
	if err != nil {
		return err
	}
	*ts = timeScanner(t)
	return nil
}

// ScanNullTime is ScanTime for nullable columns: NULL stores nil in *t.
func ScanNullTime(t **time.Time) sql.Scanner { return &nullTimeScanner{dst: t} }

type nullTimeScanner struct {
	dst **time.Time
}

func (n *nullTimeScanner) Scan(src any) error {
	if src == nil {
		*n.dst = nil
		return nil
	}
	var t time.Time
	if err := ScanTime(&t).Scan(src); err != nil {
		return err
	}
	*n.dst = &t
	return nil
}
