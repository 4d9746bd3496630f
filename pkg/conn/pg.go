// Package conn opens the external connections the historical archive
// uses.
package conn

import (
	"fmt"
	"net/url"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultPostgresHost    = "localhost"
	defaultPostgresPort    = 5432
	defaultPostgresSSLMode = "disable"
)

// Postgres describes a PostgreSQL endpoint. An explicit DSN wins; empty
// fields otherwise fall back to local defaults.
type Postgres struct {
	DSN      string            `json:"dsn"`
	Host     string            `json:"host"`
	Port     int               `json:"port"`
	User     string            `json:"user"`
	Password string            `json:"password"`
	Database string            `json:"database"`
	SSLMode  string            `json:"ssl_mode"`
	Params   map[string]string `json:"params"`
}

// OpenPostgres dials the endpoint and returns the gorm handle.
func OpenPostgres(p Postgres, cfg *gorm.Config) (*gorm.DB, error) {
	if cfg == nil {
		cfg = &gorm.Config{}
	}
	return gorm.Open(postgres.Open(p.dsn()), cfg)
}

// ClosePostgres releases the connection pool behind a gorm handle.
func ClosePostgres(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (p Postgres) dsn() string {
	if p.DSN != "" {
		return p.DSN
	}

	host := p.Host
	if host == "" {
		host = defaultPostgresHost
	}
	port := p.Port
	if port == 0 {
		port = defaultPostgresPort
	}
	sslMode := p.SSLMode
	if sslMode == "" {
		sslMode = defaultPostgresSSLMode
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%d", host, port),
	}
	if p.User != "" {
		if p.Password != "" {
			u.User = url.UserPassword(p.User, p.Password)
		} else {
			u.User = url.User(p.User)
		}
	}
	if p.Database != "" {
		u.Path = "/" + p.Database
	}

	query := url.Values{}
	query.Set("sslmode", sslMode)
	for key, value := range p.Params {
		if key == "" {
			continue
		}
		query.Set(key, value)
	}
	u.RawQuery = query.Encode()

	return u.String()
}
