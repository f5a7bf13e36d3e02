package auth

import "github.com/google/uuid"

type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// Principal is the authenticated caller. It travels by value from the
// transport layer down to the services.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

// SystemPrincipal returns the identity background jobs act under.
// Each call yields a fresh value, so callers may take its address freely.
func SystemPrincipal() Principal {
	return Principal{UserID: uuid.Nil, Role: RoleAdmin}
}
