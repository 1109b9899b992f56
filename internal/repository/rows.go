package repository

import (
	"database/sql"
	"time"
)

func stringOr(v sql.NullString, fallback string) string {
	if v.Valid && v.String != "" {
		return v.String
	}
	return fallback
}

func intOr(v sql.NullInt64, fallback int) int {
	if v.Valid {
		return int(v.Int64)
	}
	return fallback
}

func timeOr(v sql.NullTime, fallback time.Time) time.Time {
	if v.Valid {
		return v.Time
	}
	return fallback
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func nullableString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func nullableTime(v time.Time) sql.NullTime {
	return sql.NullTime{Time: v.UTC(), Valid: !v.IsZero()}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
