package core

import "time"

// Status is the article lifecycle state. The happy path is monotonic
// (draft, in review, published); archival is orthogonal and reachable from
// any state. Scheduled exists only in the dashboard demo store.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusInReview  Status = "in_review"
	StatusScheduled Status = "scheduled"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusInReview, StatusScheduled, StatusPublished, StatusArchived:
		return true
	default:
		return false
	}
}

func (s Status) Label() string {
	switch s {
	case StatusDraft:
		return "Draft"
	case StatusInReview:
		return "In Review"
	case StatusScheduled:
		return "Scheduled"
	case StatusPublished:
		return "Published"
	case StatusArchived:
		return "Archived"
	}
	return "unknown"
}

type Article struct {
	ID          int
	Slug        string // unique, URL-safe
	Title       string
	Summary     string
	Content     string // markdown
	Status      Status
	Category    string // category slug
	AuthorID    int
	AuthorName  string
	Tags        []string
	Views       int
	Comments    int
	TsCreated   int64
	TsUpdated   int64
	TsPublished int64 // zero until published, set exactly once
}

func (a *Article) Published() bool {
	return a.Status == StatusPublished && a.TsPublished != 0
}

// PublishedAt returns the publication time, or the zero time for unpublished
// articles.
func (a *Article) PublishedAt() time.Time {
	if a.TsPublished == 0 {
		return time.Time{}
	}
	return time.Unix(a.TsPublished, 0)
}

type ArticleDB interface {
	AddView(id int) error
	CountByStatus() (map[Status]int, error)
	DeleteArticle(id int) error
	GetAllArticles(limit, offset int) ([]Article, error)
	GetArticle(id int) (*Article, error)
	GetArticleBySlug(slug string) (*Article, error)
	GetByAuthor(authorID int) ([]Article, error)
	GetPublished(limit, offset int) ([]Article, error)
	InsertArticle(a *Article) error
	IsNotFound(err error) bool
	SlugExists(slug string) (bool, error)

	// Conditional updates. Each is a single atomic statement scoped by id
	// plus an ownership or state predicate; the bool reports whether a row
	// matched.
	Archive(id int, ts int64) (bool, error)
	Publish(id int, ts int64) (bool, error)
	UpdateStatusAsAuthor(id, authorID int, from, to Status, ts int64) (bool, error)
}
