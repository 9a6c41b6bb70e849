package postgres

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	pq "github.com/lib/pq"

	"github.com/julianstephens/momentum/internal/constants"
)

var (
	ErrInvalidConnectionString = errors.New("invalid PostgreSQL connection string")
	ErrEmbeddedCredentials     = errors.New("connection string must not contain a password")
)

// IsConnString reports whether s looks like a PostgreSQL URL or key=value DSN rather than a file path.
func IsConnString(s string) bool {
	return isURL(s) || strings.Contains(s, "host=") || strings.Contains(s, "dbname=")
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// dsnHasKey reports whether a key=value DSN sets key (case-insensitive).
func dsnHasKey(connStr, key string) bool {
	for _, part := range strings.Fields(connStr) {
		k, _, ok := strings.Cut(part, "=")
		if ok && strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

func hasSearchPathParam(connStr string) bool {
	return dsnHasKey(connStr, "search_path")
}

// hasSSLMode checks both URL query parameters and DSN keys.
func hasSSLMode(connStr string) bool {
	if u, err := url.Parse(connStr); err == nil && u.Scheme != "" {
		for key := range u.Query() {
			if strings.EqualFold(key, "sslmode") {
				return true
			}
		}
	}
	return dsnHasKey(connStr, "sslmode")
}

// withSearchPath pins the connection to the momentum schema unless a search_path is already set.
func withSearchPath(connStr string) string {
	if !isURL(connStr) {
		if hasSearchPathParam(connStr) {
			return connStr
		}
		return strings.TrimSpace(connStr) + " search_path=" + constants.AppName
	}

	u, err := url.Parse(connStr)
	if err != nil {
		return connStr
	}
	q := u.Query()
	if q.Get("search_path") == "" {
		q.Set("search_path", constants.AppName)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// ValidateConnString checks that connStr parses as a PostgreSQL URL or DSN and carries no password.
// Passwords belong in ~/.pgpass or PGPASSWORD.
func ValidateConnString(connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return fmt.Errorf("%w: connection string cannot be empty", ErrInvalidConnectionString)
	}
	if _, err := pq.NewConnector(connStr); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
	}

	if !isURL(connStr) {
		if dsnHasKey(connStr, "password") {
			return ErrEmbeddedCredentials
		}
		return nil
	}

	u, err := url.Parse(connStr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConnectionString, err)
	}
	if _, set := u.User.Password(); set {
		return ErrEmbeddedCredentials
	}
	if u.Host == "" && u.User == nil && (u.Path == "" || u.Path == "/") {
		return fmt.Errorf("%w: connection URL is incomplete", ErrInvalidConnectionString)
	}
	return nil
}
