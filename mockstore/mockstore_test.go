package mockstore

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/wartasekolah/warta/core"
)

func newStore(t *testing.T) *MemoryStore {
	t.Helper()
	s, err := NewMemoryStore("")
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSeededFixtures(t *testing.T) {

	s := newStore(t)

	if len(s.Articles()) == 0 || len(s.Users()) == 0 || len(s.Categories()) == 0 || len(s.Media()) == 0 {
		t.Fatal("store must come seeded")
	}
	if s.Settings().SiteName == "" {
		t.Fatal("settings must come seeded")
	}
}

func TestAddArticleAssignsID(t *testing.T) {

	s := newStore(t)

	a := s.AddArticle(Article{Title: "Baru"})
	if a.ID == "" {
		t.Fatal("expected generated id")
	}
	// newest first
	if s.Articles()[0].ID != a.ID {
		t.Fatal("new article must lead the list")
	}
}

func TestUpdateArticlePatch(t *testing.T) {

	s := newStore(t)

	var status = core.StatusPublished
	if err := s.UpdateArticle("a3", ArticlePatch{Status: &status}); err != nil {
		t.Fatal(err)
	}

	for _, a := range s.Articles() {
		if a.ID == "a3" {
			if a.Status != core.StatusPublished {
				t.Fatalf("status: got %s", a.Status)
			}
			if a.Title == "" {
				t.Fatal("unpatched fields must survive")
			}
		}
	}

	if err := s.UpdateArticle("missing", ArticlePatch{}); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestBulkUpdateArticles(t *testing.T) {

	s := newStore(t)

	var status = core.StatusArchived
	n := s.BulkUpdateArticles([]string{"a1", "a2", "missing"}, ArticlePatch{Status: &status})
	if n != 2 {
		t.Fatalf("got %d", n)
	}

	for _, a := range s.Articles() {
		if (a.ID == "a1" || a.ID == "a2") && a.Status != core.StatusArchived {
			t.Fatalf("%s: got %s", a.ID, a.Status)
		}
	}
}

func TestDeleteCategoryGuard(t *testing.T) {

	s := newStore(t)

	// c1 is seeded with articles
	if err := s.DeleteCategory("c1"); !errors.Is(err, core.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// c5 is empty
	if err := s.DeleteCategory("c5"); err != nil {
		t.Fatal(err)
	}
}

func TestDeleteMediaGuard(t *testing.T) {

	s := newStore(t)

	// m1 is used by an article
	if err := s.DeleteMedia("m1"); !errors.Is(err, core.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// m3 is unused
	if err := s.DeleteMedia("m3"); err != nil {
		t.Fatal(err)
	}
}

func TestRowActions(t *testing.T) {

	s := newStore(t)

	if _, err := ParseRowAction("explode"); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}

	action, err := ParseRowAction("publish")
	if err != nil {
		t.Fatal(err)
	}
	if err := action.Apply(s, "a3"); err != nil {
		t.Fatal(err)
	}

	del, _ := ParseRowAction("delete")
	if err := del.Apply(s, "a3"); err != nil {
		t.Fatal(err)
	}
	for _, a := range s.Articles() {
		if a.ID == "a3" {
			t.Fatal("a3 should be gone")
		}
	}
}

func TestBulkActions(t *testing.T) {

	s := newStore(t)

	action, err := ParseBulkAction("delete")
	if err != nil {
		t.Fatal(err)
	}
	n, err := action.Apply(s, []string{"a1", "a2"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("got %d", n)
	}
}

func TestSettingsPersistence(t *testing.T) {

	var path = filepath.Join(t.TempDir(), "demo.ini")

	s1, err := NewMemoryStore(path)
	if err != nil {
		t.Fatal(err)
	}

	var siteName = "Warta Uji"
	var review = false
	if err := s1.UpdateSettings(SettingsPatch{SiteName: &siteName, ReviewRequired: &review}); err != nil {
		t.Fatal(err)
	}
	if err := s1.SetSidebarCollapsed(true); err != nil {
		t.Fatal(err)
	}

	// mutate demo data too; it must NOT survive the restart
	s1.AddArticle(Article{Title: "Sekali pakai"})

	s2, err := NewMemoryStore(path)
	if err != nil {
		t.Fatal(err)
	}

	if got := s2.Settings().SiteName; got != "Warta Uji" {
		t.Fatalf("site name: got %q", got)
	}
	if s2.Settings().ReviewRequired {
		t.Fatal("review_required must persist as false")
	}
	if !s2.SidebarCollapsed() {
		t.Fatal("sidebar preference must persist")
	}

	for _, a := range s2.Articles() {
		if a.Title == "Sekali pakai" {
			t.Fatal("demo articles must not persist")
		}
	}
}
