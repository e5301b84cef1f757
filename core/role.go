package core

import "fmt"

// Role is the closed set of club roles. The backend schema knows exactly
// these four values, defined here once and imported everywhere.
type Role string

const (
	Member Role = "member"
	Writer Role = "writer"
	Editor Role = "editor"
	Admin  Role = "admin"
)

// AllRoles is ordered from least to most privileged.
var AllRoles = []Role{Member, Writer, Editor, Admin}

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case Member, Writer, Editor, Admin:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrValidation, s)
}

func (r Role) Valid() bool {
	switch r {
	case Member, Writer, Editor, Admin:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// CanAccessDashboard is true for every role except plain membership.
func (r Role) CanAccessDashboard() bool {
	return r.Valid() && r != Member
}

// CanPublish gates the approve-and-publish and archive transitions.
func (r Role) CanPublish() bool {
	return r == Editor || r == Admin
}

// CanManageRoles gates member management.
func (r Role) CanManageRoles() bool {
	return r == Admin
}
