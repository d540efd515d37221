package database

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports a duplicate alarm id on insert.
// SQLite drivers do not always translate the error, so the message is checked too.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "unique constraint failed") || // sqlite
		strings.Contains(errMsg, "duplicate key") || // postgres
		strings.Contains(errMsg, "sqlstate 23505")
}
