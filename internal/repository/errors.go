// Package repository translates domain operations into persistence
// statements. Every read and write on user-owned rows is scoped by the
// caller's user id; client-supplied ownership fields are never trusted.
package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrConflict reports a uniqueness-constraint violation (duplicate email,
// duplicate job key, duplicate contact key).
var ErrConflict = errors.New("conflict")

// ErrNotFound reports that a scoped lookup yielded nothing.
var ErrNotFound = errors.New("not found")

const (
	mysqlDuplicateEntry  = 1062
	pgUniqueViolation    = "23505"
	sqliteUniqueFragment = "UNIQUE constraint failed"
)

// translate collapses driver-specific duplicate-key errors into ErrConflict
// so the service layer sees one conflict condition regardless of dialect.
func translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return ErrConflict
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrConflict
	}

	// sqlite drivers surface constraint violations as plain strings
	if strings.Contains(err.Error(), sqliteUniqueFragment) {
		return ErrConflict
	}

	return err
}
