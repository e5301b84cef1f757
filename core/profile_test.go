package core

import (
	"errors"
	"testing"
)

func TestValidUsername(t *testing.T) {
	valid := []string{"budi", "sari_w", "abc", "a2345678901234567890"}
	invalid := []string{"ab", "Budi", "budi santoso", "budi-s", "", "a23456789012345678901"}

	for _, u := range valid {
		if !ValidUsername(u) {
			t.Errorf("ValidUsername(%q) = false", u)
		}
	}
	for _, u := range invalid {
		if ValidUsername(u) {
			t.Errorf("ValidUsername(%q) = true", u)
		}
	}
}

func TestCreateProfile(t *testing.T) {

	db, _, _ := newTestDB(t)

	p, err := db.CreateProfile("Budi Santoso", "  BUDI  ", "budi@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if p.Username != "budi" {
		t.Fatalf("username not normalized: %q", p.Username)
	}
	if p.Role != Member {
		t.Fatalf("new profiles must start as member, got %s", p.Role)
	}

	// duplicate username
	if _, err := db.CreateProfile("Other", "budi", "other@example.com"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	// invalid pattern
	if _, err := db.CreateProfile("X", "b!", "x@example.com"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSetPasswordRejectsEmpty(t *testing.T) {
	db, _, _ := newTestDB(t)
	if err := db.SetPassword(1, ""); !errors.Is(err, ErrEmptyPassword) {
		t.Fatalf("got %v", err)
	}
}

func TestUpdateOwnProfile(t *testing.T) {

	db, _, profiles := newTestDB(t)

	p, _ := profiles.InsertProfile("Budi", "budi", "budi@example.com", Writer)

	if err := db.UpdateOwnProfile(p, "Budi S."); err != nil {
		t.Fatal(err)
	}
	if got := profiles.profiles[p.ID].Name; got != "Budi S." {
		t.Fatalf("got %q", got)
	}
	// the role is untouched
	if got := profiles.profiles[p.ID].Role; got != Writer {
		t.Fatalf("role changed to %s", got)
	}

	if err := db.UpdateOwnProfile(p, "  "); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if err := db.UpdateOwnProfile(nil, "X"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
