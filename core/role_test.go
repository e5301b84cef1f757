package core

import (
	"errors"
	"testing"
)

func TestParseRole(t *testing.T) {

	for _, s := range []string{"member", "writer", "editor", "admin"} {
		role, err := ParseRole(s)
		if err != nil {
			t.Fatalf("ParseRole(%q) error: %v", s, err)
		}
		if role.String() != s {
			t.Fatalf("got %s", role)
		}
	}

	for _, s := range []string{"", "chief", "Admin", "root"} {
		if _, err := ParseRole(s); !errors.Is(err, ErrValidation) {
			t.Fatalf("ParseRole(%q): expected ErrValidation, got %v", s, err)
		}
	}
}

func TestCanAccessDashboard(t *testing.T) {

	// exactly the member role is excluded
	for _, role := range AllRoles {
		want := role != Member
		if got := role.CanAccessDashboard(); got != want {
			t.Errorf("%s.CanAccessDashboard() = %t, want %t", role, got, want)
		}
	}

	// an invalid role never grants access
	if Role("chief").CanAccessDashboard() {
		t.Error("invalid role must not access the dashboard")
	}
}

func TestRolePermissions(t *testing.T) {

	if Writer.CanPublish() || Member.CanPublish() {
		t.Error("writers and members must not publish")
	}
	if !Editor.CanPublish() || !Admin.CanPublish() {
		t.Error("editors and admins must publish")
	}

	for _, role := range []Role{Member, Writer, Editor} {
		if role.CanManageRoles() {
			t.Errorf("%s must not manage roles", role)
		}
	}
	if !Admin.CanManageRoles() {
		t.Error("admin must manage roles")
	}
}
