package core

import (
	"fmt"
	"strings"

	"github.com/icza/gox/imagex/colorx"
)

type Category struct {
	ID           int
	Name         string
	Slug         string
	Description  string
	Color        string // hex, like "#EF4444"
	ArticleCount int
	TsCreated    int64
}

type CategoryDB interface {
	// DeleteCategory must not remove a category which still has articles;
	// the bool reports whether a row matched.
	DeleteCategory(id int) (bool, error)
	GetAllCategories() ([]Category, error)
	GetCategory(id int) (*Category, error)
	GetCategoryBySlug(slug string) (*Category, error)
	InsertCategory(c *Category) error
	IsNotFound(err error) bool
	UpdateCategory(c *Category) error
}

// CreateCategory validates the color and derives the slug from the name.
func (c *CoreDB) CreateCategory(actor *Profile, name, description, color string) error {

	if actor == nil {
		return ErrUnauthorized
	}
	if !actor.Role.CanAccessDashboard() {
		return ErrForbidden
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return validationf("category name can't be empty")
	}

	if color != "" {
		if _, err := colorx.ParseHexColor(color); err != nil {
			return validationf("bad color %q", color)
		}
	}

	slug := NormalizeSlug(name)
	if slug == "" {
		return validationf("category name yields an empty slug")
	}

	return c.CategoryDB.InsertCategory(&Category{
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(description),
		Color:       color,
		TsCreated:   now().Unix(),
	})
}

// DeleteCategory rejects deletion while articles still reference the
// category. The sql implementation repeats the guard in its predicate.
func (c *CoreDB) DeleteCategory(actor *Profile, id int) error {

	if actor == nil {
		return ErrUnauthorized
	}
	if !actor.Role.CanAccessDashboard() {
		return ErrForbidden
	}

	cat, err := c.CategoryDB.GetCategory(id)
	if err != nil {
		return err
	}
	if cat.ArticleCount > 0 {
		return fmt.Errorf("%w: category %s still has %d articles", ErrConflict, cat.Name, cat.ArticleCount)
	}

	ok, err := c.CategoryDB.DeleteCategory(id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConflict // articles appeared concurrently
	}
	return nil
}
