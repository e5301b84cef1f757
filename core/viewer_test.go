package core

import (
	"errors"
	"testing"
)

func TestResolveViewerAnonymous(t *testing.T) {
	db, _, _ := newTestDB(t)
	if v := db.ResolveViewer(0); v.LoggedIn || v.CanAccessDashboard {
		t.Fatalf("got %+v", v)
	}
}

func TestResolveViewer(t *testing.T) {

	db, _, profiles := newTestDB(t)

	p, _ := profiles.InsertProfile("Budi", "budi", "budi@example.com", Editor)

	v := db.ResolveViewer(p.ID)
	if !v.LoggedIn {
		t.Fatal("expected logged in")
	}
	if v.Role != Editor || !v.CanAccessDashboard {
		t.Fatalf("got %+v", v)
	}
	if v.Profile.Name != "Budi" || v.Profile.Username != "budi" {
		t.Fatalf("got %+v", v.Profile)
	}
}

func TestResolveViewerMemberHasNoDashboard(t *testing.T) {

	db, _, profiles := newTestDB(t)

	p, _ := profiles.InsertProfile("Andi", "andi", "andi@example.com", Member)

	v := db.ResolveViewer(p.ID)
	if !v.LoggedIn || v.CanAccessDashboard {
		t.Fatalf("got %+v", v)
	}
}

func TestResolveViewerDegradesToGuest(t *testing.T) {

	db, _, profiles := newTestDB(t)

	// unknown id
	if v := db.ResolveViewer(99); v.LoggedIn {
		t.Fatalf("got %+v", v)
	}

	// backend error
	profiles.err = errors.New("connection refused")
	if v := db.ResolveViewer(1); v.LoggedIn {
		t.Fatalf("got %+v", v)
	}
}

func TestResolveViewerInvalidRoleDefaultsToMember(t *testing.T) {

	db, _, profiles := newTestDB(t)

	p, _ := profiles.InsertProfile("X", "x_user", "x@example.com", Role("chief"))

	v := db.ResolveViewer(p.ID)
	if v.Role != Member {
		t.Fatalf("got %s", v.Role)
	}
	if v.CanAccessDashboard {
		t.Fatal("defaulted member must not access the dashboard")
	}
}
