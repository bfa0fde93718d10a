package sqlite

import "strings"

// The modernc driver surfaces constraint failures only as message text, so
// classification is substring matching on the SQLite error strings.

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
