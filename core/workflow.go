package core

import (
	"fmt"
	"strings"
	"time"
)

// server clock, swapped in tests
var now = time.Now

// DraftInput carries the writer-supplied fields of a new article.
type DraftInput struct {
	Title    string
	Summary  string
	Content  string
	Category string // category slug, may be empty
	Tags     []string
}

// CreateDraft requires an authenticated actor of any role. The slug is
// derived from the title; on collision a numeric suffix is appended.
func (c *CoreDB) CreateDraft(actor *Profile, in DraftInput) (*Article, error) {

	if actor == nil {
		return nil, ErrUnauthorized
	}

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return nil, validationf("title can't be empty")
	}

	slug, err := c.UniqueSlug(in.Title)
	if err != nil {
		return nil, err
	}

	var ts = now().Unix()
	var a = &Article{
		Slug:      slug,
		Title:     in.Title,
		Summary:   strings.TrimSpace(in.Summary),
		Content:   in.Content,
		Status:    StatusDraft,
		Category:  in.Category,
		AuthorID:  actor.ID,
		Tags:      in.Tags,
		TsCreated: ts,
		TsUpdated: ts,
	}

	if err := c.ArticleDB.InsertArticle(a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	c.Log.Info().Int("article", a.ID).Str("slug", a.Slug).Int("author", actor.ID).Msg("draft created")
	return a, nil
}

// SubmitForReview moves a draft to review. Only the author may submit,
// regardless of role. The update is atomic: it is scoped by id, author and
// old status, so a concurrent conflicting update simply fails the predicate.
func (c *CoreDB) SubmitForReview(actor *Profile, id int) error {

	if actor == nil {
		return ErrUnauthorized
	}

	ok, err := c.ArticleDB.UpdateStatusAsAuthor(id, actor.ID, StatusDraft, StatusInReview, now().Unix())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	if ok {
		c.Log.Info().Int("article", id).Int("author", actor.ID).Msg("submitted for review")
		return nil
	}

	// distinguish ownership failure from state failure
	a, err := c.ArticleDB.GetArticle(id)
	if err != nil {
		if c.ArticleDB.IsNotFound(err) {
			return fmt.Errorf("%w: article %d not found", ErrValidation, id)
		}
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	if a.AuthorID != actor.ID {
		return fmt.Errorf("%w: only the author can submit for review", ErrUnauthorized)
	}
	return fmt.Errorf("%w: article is %s, not %s", ErrConflict, a.Status, StatusDraft)
}

// ApproveAndPublish requires an editor or admin. It sets the status to
// published and the publication timestamp exactly once; the predicate on the
// update rejects already-published and archived articles.
func (c *CoreDB) ApproveAndPublish(actor *Profile, id int) error {

	if actor == nil {
		return ErrUnauthorized
	}
	if !actor.Role.CanPublish() {
		return fmt.Errorf("%w: role %s can't publish", ErrForbidden, actor.Role)
	}

	ok, err := c.ArticleDB.Publish(id, now().Unix())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	if !ok {
		return fmt.Errorf("%w: article %d is already published, archived or missing", ErrConflict, id)
	}

	c.Log.Info().Int("article", id).Str("editor", actor.Username).Msg("published")
	return nil
}

// ArchiveArticle is reachable from any non-archived state and is not further
// transitioned. Editors and admins only.
func (c *CoreDB) ArchiveArticle(actor *Profile, id int) error {

	if actor == nil {
		return ErrUnauthorized
	}
	if !actor.Role.CanPublish() {
		return fmt.Errorf("%w: role %s can't archive", ErrForbidden, actor.Role)
	}

	ok, err := c.ArticleDB.Archive(id, now().Unix())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	if !ok {
		return fmt.Errorf("%w: article %d is already archived or missing", ErrConflict, id)
	}
	return nil
}

// AssignRole is the admin-only member-management transition. An admin can
// never change their own role, so they can't lock themselves out.
func (c *CoreDB) AssignRole(actor *Profile, targetID int, role Role) error {

	if actor == nil {
		return ErrUnauthorized
	}
	if !actor.Role.CanManageRoles() {
		return fmt.Errorf("%w: role %s can't manage members", ErrForbidden, actor.Role)
	}
	if actor.ID == targetID {
		return fmt.Errorf("%w: you can't change your own role", ErrForbidden)
	}
	if !role.Valid() {
		return validationf("unknown role %q", role)
	}

	ok, err := c.ProfileDB.SetRole(targetID, role)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	if !ok {
		return fmt.Errorf("%w: profile %d not found", ErrValidation, targetID)
	}

	c.Log.Info().Int("profile", targetID).Str("role", role.String()).Str("admin", actor.Username).Msg("role assigned")
	return nil
}
