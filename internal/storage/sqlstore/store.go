// Package sqlstore holds the record queries shared by the sqlite and postgres backends.
// Queries are written with ? placeholders and rebound by the backend's Dialect.
package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/momentum/internal/storage"
)

// Dialect captures what differs between the SQL backends.
type Dialect interface {
	Rebind(query string) string
	IsUniqueViolation(err error) bool
}

// Queries implements the record methods of storage.Provider.
type Queries struct {
	db      *sql.DB
	dialect Dialect
}

func New(db *sql.DB, dialect Dialect) *Queries {
	return &Queries{db: db, dialect: dialect}
}

// DB returns the underlying connection pool.
func (q *Queries) DB() *sql.DB {
	return q.db
}

func (q *Queries) exec(query string, args ...any) (sql.Result, error) {
	return q.db.Exec(q.dialect.Rebind(query), args...)
}

func (q *Queries) query(query string, args ...any) (*sql.Rows, error) {
	return q.db.Query(q.dialect.Rebind(query), args...)
}

func (q *Queries) queryRow(query string, args ...any) *sql.Row {
	return q.db.QueryRow(q.dialect.Rebind(query), args...)
}

func (q *Queries) count(query string, args ...any) (int, error) {
	var n int
	if err := q.queryRow(query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// insertIfAbsent runs an INSERT ... ON CONFLICT DO NOTHING and reports whether a row was written.
func (q *Queries) insertIfAbsent(query string, args ...any) (bool, error) {
	res, err := q.exec(query, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// insertUnique maps a unique constraint failure to storage.ErrDuplicate.
func (q *Queries) insertUnique(what, query string, args ...any) error {
	if _, err := q.exec(query, args...); err != nil {
		if q.dialect.IsUniqueViolation(err) {
			return fmt.Errorf("%s: %w", what, storage.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert %s: %w", what, err)
	}
	return nil
}

// updateOne fails with storage.ErrNotFound when no row matched.
func (q *Queries) updateOne(what, query string, args ...any) error {
	res, err := q.exec(query, args...)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", what, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", what, storage.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, storage.ErrNotFound)
	}
	return err
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseTime(field, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", field, err)
	}
	return t, nil
}

// QuestionRebind leaves ? placeholders untouched.
func QuestionRebind(query string) string {
	return query
}

// DollarRebind numbers ? placeholders as $1, $2, ...
func DollarRebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
