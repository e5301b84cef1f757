package core

import (
	"errors"
	"testing"
)

type fakeCategoryDB struct {
	categories map[int]*Category
	nextID     int
}

func newFakeCategoryDB() *fakeCategoryDB {
	return &fakeCategoryDB{categories: make(map[int]*Category), nextID: 1}
}

func (f *fakeCategoryDB) DeleteCategory(id int) (bool, error) {
	c, ok := f.categories[id]
	if !ok || c.ArticleCount > 0 {
		return false, nil
	}
	delete(f.categories, id)
	return true, nil
}

func (f *fakeCategoryDB) GetAllCategories() ([]Category, error) {
	var all []Category
	for _, c := range f.categories {
		all = append(all, *c)
	}
	return all, nil
}

func (f *fakeCategoryDB) GetCategory(id int) (*Category, error) {
	if c, ok := f.categories[id]; ok {
		var copied = *c
		return &copied, nil
	}
	return nil, errFakeNotFound
}

func (f *fakeCategoryDB) GetCategoryBySlug(slug string) (*Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			var copied = *c
			return &copied, nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeCategoryDB) InsertCategory(c *Category) error {
	c.ID = f.nextID
	f.nextID++
	var copied = *c
	f.categories[c.ID] = &copied
	return nil
}

func (f *fakeCategoryDB) IsNotFound(err error) bool {
	return errors.Is(err, errFakeNotFound)
}

func (f *fakeCategoryDB) UpdateCategory(c *Category) error {
	if _, ok := f.categories[c.ID]; !ok {
		return errFakeNotFound
	}
	var copied = *c
	f.categories[c.ID] = &copied
	return nil
}

func TestCreateCategory(t *testing.T) {

	db, _, _ := newTestDB(t)
	var categories = newFakeCategoryDB()
	db.CategoryDB = categories

	var editor = &Profile{ID: 1, Role: Editor}

	if err := db.CreateCategory(editor, "Prestasi Siswa", "lomba dan juara", "#EF4444"); err != nil {
		t.Fatal(err)
	}

	cat, err := categories.GetCategoryBySlug("prestasi-siswa")
	if err != nil {
		t.Fatal(err)
	}
	if cat.Color != "#EF4444" {
		t.Fatalf("got %q", cat.Color)
	}
}

func TestCreateCategoryGuards(t *testing.T) {

	db, _, _ := newTestDB(t)
	db.CategoryDB = newFakeCategoryDB()

	var editor = &Profile{ID: 1, Role: Editor}
	var member = &Profile{ID: 2, Role: Member}

	if err := db.CreateCategory(member, "X", "", ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("member: expected ErrForbidden, got %v", err)
	}
	if err := db.CreateCategory(nil, "X", "", ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("nil: expected ErrUnauthorized, got %v", err)
	}
	if err := db.CreateCategory(editor, "  ", "", ""); !errors.Is(err, ErrValidation) {
		t.Fatalf("empty name: expected ErrValidation, got %v", err)
	}
	if err := db.CreateCategory(editor, "X", "", "red"); !errors.Is(err, ErrValidation) {
		t.Fatalf("bad color: expected ErrValidation, got %v", err)
	}
}

func TestDeleteCategory(t *testing.T) {

	db, _, _ := newTestDB(t)
	var categories = newFakeCategoryDB()
	db.CategoryDB = categories

	var admin = &Profile{ID: 1, Role: Admin}

	categories.InsertCategory(&Category{Name: "Kosong", Slug: "kosong"})
	categories.InsertCategory(&Category{Name: "Terpakai", Slug: "terpakai", ArticleCount: 3})

	if err := db.DeleteCategory(admin, 1); err != nil {
		t.Fatal(err)
	}

	// still referenced by articles
	if err := db.DeleteCategory(admin, 2); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if _, err := categories.GetCategory(2); err != nil {
		t.Fatal("guarded category was deleted")
	}
}
