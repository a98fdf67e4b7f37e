// Package controller provides the HTTP handlers of the community portal:
// the JSON API for users, members, events and directory entries, plus the
// server-rendered browser pages.
package controller

import (
	"nouasseur-portal/database"
)

// isNotFound reports whether a service error means the record is absent.
func isNotFound(err error) bool {
	return database.IsNotFound(err)
}
