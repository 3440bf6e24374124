package domain

// Role is the caller's role as asserted by the identity token.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Identity is the verified caller of a request. SubjectID is opaque to this service:
// it is whatever the auth service put in the token and is stored as the owner of
// routines and workout logs.
type Identity struct {
	SubjectID string
	Role      Role
}

