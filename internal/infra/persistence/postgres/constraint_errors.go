package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SQLSTATE codes checked when the driver does not translate errors for GORM.
const (
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// Foreign keys of alert_assets, named in the migrations.
const (
	alertAssetsAlertFK    = "alert_assets_alert_id_fkey"
	alertAssetsActivityFK = "alert_assets_activity_idx_fkey"
)

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, pgForeignKeyViolation) ||
		strings.Contains(errMsg, "foreign key constraint")
}

// violatesConstraint reports whether err names the given constraint. Postgres includes the name in
// the message; SQLite does not, so callers need a fallback for unnamed violations.
func violatesConstraint(err error, name string) bool {
	return strings.Contains(strings.ToLower(err.Error()), name)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, pgNotNullViolation)
}
