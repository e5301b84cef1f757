package mockstore

import (
	"fmt"

	"github.com/wartasekolah/warta/core"
)

// RowAction is a closed set. Adding a case means extending both Parse and
// Apply, the exhaustive switches below reject everything else.
type RowAction string

const (
	RowPublish   RowAction = "publish"
	RowUnpublish RowAction = "unpublish"
	RowArchive   RowAction = "archive"
	RowDelete    RowAction = "delete"
)

func ParseRowAction(s string) (RowAction, error) {
	switch a := RowAction(s); a {
	case RowPublish, RowUnpublish, RowArchive, RowDelete:
		return a, nil
	default:
		return "", fmt.Errorf("%w: unknown row action %q", core.ErrValidation, s)
	}
}

// Apply executes the action against a single article in the store.
func (a RowAction) Apply(store Store, id string) error {
	switch a {
	case RowPublish:
		var status = core.StatusPublished
		return store.UpdateArticle(id, ArticlePatch{Status: &status})
	case RowUnpublish:
		var status = core.StatusDraft
		return store.UpdateArticle(id, ArticlePatch{Status: &status})
	case RowArchive:
		var status = core.StatusArchived
		return store.UpdateArticle(id, ArticlePatch{Status: &status})
	case RowDelete:
		return store.DeleteArticle(id)
	default:
		return fmt.Errorf("%w: unknown row action %q", core.ErrValidation, string(a))
	}
}

// BulkAction operates on a selection of article ids at once.
type BulkAction string

const (
	BulkPublish BulkAction = "publish"
	BulkArchive BulkAction = "archive"
	BulkDelete  BulkAction = "delete"
)

func ParseBulkAction(s string) (BulkAction, error) {
	switch a := BulkAction(s); a {
	case BulkPublish, BulkArchive, BulkDelete:
		return a, nil
	default:
		return "", fmt.Errorf("%w: unknown bulk action %q", core.ErrValidation, s)
	}
}

// Apply executes the action for every selected id and reports how many
// articles were touched.
func (a BulkAction) Apply(store Store, ids []string) (int, error) {
	switch a {
	case BulkPublish:
		var status = core.StatusPublished
		return store.BulkUpdateArticles(ids, ArticlePatch{Status: &status}), nil
	case BulkArchive:
		var status = core.StatusArchived
		return store.BulkUpdateArticles(ids, ArticlePatch{Status: &status}), nil
	case BulkDelete:
		var n int
		for _, id := range ids {
			if err := store.DeleteArticle(id); err == nil {
				n++
			}
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: unknown bulk action %q", core.ErrValidation, string(a))
	}
}
