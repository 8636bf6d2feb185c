package service

import "golgappe-admin/models"

// Actor is the authenticated identity behind a request, as resolved by the
// auth middleware. The services trust ID and Role as given.
type Actor struct {
	ID   uint
	Role models.UserRole
}
