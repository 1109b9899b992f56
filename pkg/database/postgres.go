package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/noah-isme/eduverse-api/pkg/config"
)

const pingTimeout = 3 * time.Second

// NewPostgres returns a configured PostgreSQL pool. The pool is opened lazily: an
// unreachable, unusable or placeholder store is logged and every later query fails fast.
// Bad store settings never fail startup.
func NewPostgres(cfg config.StoreConfig, logger *zap.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.Rejected != "" {
		logger.Warn("store url ignored, using placeholder", zap.String("reason", cfg.Rejected))
	}

	dsn, err := BuildDSN(cfg.URL, cfg.Key)
	if err != nil {
		logger.Warn("store url unusable, using placeholder", zap.Error(err))
		cfg.Configured = false
		dsn = config.PlaceholderStoreURL
	}

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}

	db.SetConnMaxLifetime(1 * time.Hour)
	db.SetConnMaxIdleTime(30 * time.Minute)

	if !cfg.Configured {
		logger.Warn("store credentials missing, using placeholder; reads will be served from the fallback dataset")
		return db, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		logger.Warn("store ping failed", zap.Error(err))
	}

	return db, nil
}

// BuildDSN injects the access key as the password of a postgres:// URL. A key already
// present in the URL is kept.
func BuildDSN(rawURL, key string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse store url: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("unsupported store scheme %q", u.Scheme)
	}

	if key != "" {
		if _, hasPassword := u.User.Password(); !hasPassword {
			username := "postgres"
			if u.User != nil && u.User.Username() != "" {
				username = u.User.Username()
			}
			u.User = url.UserPassword(username, key)
		}
	}

	return u.String(), nil
}
