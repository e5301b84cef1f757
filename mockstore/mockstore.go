// Package mockstore backs the design-time dashboard demo pages. It holds a
// parallel, deliberately unsynchronized copy of articles, users, categories
// and media, seeded from fixtures on every start. Only the settings and the
// sidebar preference survive restarts; see persist.go.
//
// The live publishing workflow runs against sqldb, never against this store.
package mockstore

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/wartasekolah/warta/core"
)

type Article struct {
	ID            string
	Title         string
	Slug          string
	Status        core.Status
	Category      string
	Tags          []string
	Author        string
	Content       string
	Excerpt       string
	FeaturedImage string
	Views         int
	Comments      int
	CreatedAt     string
	UpdatedAt     string
	PublishedAt   string // empty until published
}

type User struct {
	ID       string
	Name     string
	Email    string
	Role     core.Role
	Articles int
	Bio      string
	JoinedAt string
	Active   bool
}

type Category struct {
	ID           string
	Name         string
	Slug         string
	Description  string
	ArticleCount int
	Color        string
}

type Media struct {
	ID           string
	Filename     string
	OriginalName string
	Alt          string
	Type         string
	Size         int64
	Width        int
	Height       int
	UsedIn       []string // article ids
	UploadedAt   string
	UploadedBy   string
}

type Settings struct {
	SiteName        string
	Tagline         string
	BrandPrimary    string
	ReviewRequired  bool
	DefaultStatus   core.Status
	CommentsEnabled bool
	AutoModeration  bool
}

// Patch types mirror partial updates: nil means "leave unchanged".

type ArticlePatch struct {
	Title    *string
	Status   *core.Status
	Category *string
	Tags     []string
	Excerpt  *string
}

type UserPatch struct {
	Name   *string
	Role   *core.Role
	Bio    *string
	Active *bool
}

type SettingsPatch struct {
	SiteName        *string
	Tagline         *string
	BrandPrimary    *string
	ReviewRequired  *bool
	DefaultStatus   *core.Status
	CommentsEnabled *bool
	AutoModeration  *bool
}

// Store is the injectable state container behind the demo dashboard. Tests
// swap implementations.
type Store interface {
	Articles() []Article
	AddArticle(a Article) Article
	UpdateArticle(id string, patch ArticlePatch) error
	DeleteArticle(id string) error
	BulkUpdateArticles(ids []string, patch ArticlePatch) int

	Users() []User
	AddUser(u User) User
	UpdateUser(id string, patch UserPatch) error
	DeleteUser(id string) error

	Categories() []Category
	AddCategory(c Category) Category
	DeleteCategory(id string) error

	Media() []Media
	AddMedia(m Media) Media
	DeleteMedia(id string) error

	Settings() Settings
	UpdateSettings(patch SettingsPatch) error

	SidebarCollapsed() bool
	SetSidebarCollapsed(collapsed bool) error
}

// MemoryStore is the process-wide implementation, seeded from fixtures.
type MemoryStore struct {
	mu         sync.Mutex
	articles   []Article
	users      []User
	categories []Category
	media      []Media
	settings   Settings
	sidebar    bool

	persistPath string // empty disables persistence
}

// NewMemoryStore seeds from fixtures and overlays the persisted settings, if
// a persist path is given and the file exists.
func NewMemoryStore(persistPath string) (*MemoryStore, error) {

	var s = &MemoryStore{
		articles:    seedArticles(),
		users:       seedUsers(),
		categories:  seedCategories(),
		media:       seedMedia(),
		settings:    seedSettings(),
		persistPath: persistPath,
	}

	if persistPath != "" {
		if err := s.load(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *MemoryStore) Articles() []Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Article(nil), s.articles...)
}

func (s *MemoryStore) AddArticle(a Article) Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	s.articles = append([]Article{a}, s.articles...) // newest first, like the dashboard shows them
	return a
}

func (s *MemoryStore) UpdateArticle(id string, patch ArticlePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.articles {
		if s.articles[i].ID == id {
			applyArticlePatch(&s.articles[i], patch)
			return nil
		}
	}
	return fmt.Errorf("%w: article %s not found", core.ErrValidation, id)
}

func (s *MemoryStore) DeleteArticle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.articles {
		if s.articles[i].ID == id {
			s.articles = append(s.articles[:i], s.articles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: article %s not found", core.ErrValidation, id)
}

// BulkUpdateArticles applies the patch to every article whose id is in the
// set and reports how many matched.
func (s *MemoryStore) BulkUpdateArticles(ids []string, patch ArticlePatch) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var want = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	var n int
	for i := range s.articles {
		if _, ok := want[s.articles[i].ID]; ok {
			applyArticlePatch(&s.articles[i], patch)
			n++
		}
	}
	return n
}

func applyArticlePatch(a *Article, patch ArticlePatch) {
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.Category != nil {
		a.Category = *patch.Category
	}
	if patch.Tags != nil {
		a.Tags = patch.Tags
	}
	if patch.Excerpt != nil {
		a.Excerpt = *patch.Excerpt
	}
}

func (s *MemoryStore) Users() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]User(nil), s.users...)
}

func (s *MemoryStore) AddUser(u User) User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	s.users = append([]User{u}, s.users...)
	return u
}

func (s *MemoryStore) UpdateUser(id string, patch UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			if patch.Name != nil {
				s.users[i].Name = *patch.Name
			}
			if patch.Role != nil {
				s.users[i].Role = *patch.Role
			}
			if patch.Bio != nil {
				s.users[i].Bio = *patch.Bio
			}
			if patch.Active != nil {
				s.users[i].Active = *patch.Active
			}
			return nil
		}
	}
	return fmt.Errorf("%w: user %s not found", core.ErrValidation, id)
}

func (s *MemoryStore) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: user %s not found", core.ErrValidation, id)
}

func (s *MemoryStore) Categories() []Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Category(nil), s.categories...)
}

func (s *MemoryStore) AddCategory(c Category) Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	s.categories = append([]Category{c}, s.categories...)
	return c
}

// DeleteCategory refuses while the category still counts articles.
func (s *MemoryStore) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			if s.categories[i].ArticleCount > 0 {
				return fmt.Errorf("%w: category %s still has %d articles", core.ErrConflict, s.categories[i].Name, s.categories[i].ArticleCount)
			}
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: category %s not found", core.ErrValidation, id)
}

func (s *MemoryStore) Media() []Media {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Media(nil), s.media...)
}

func (s *MemoryStore) AddMedia(m Media) Media {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	s.media = append([]Media{m}, s.media...)
	return m
}

// DeleteMedia refuses while articles still use the file.
func (s *MemoryStore) DeleteMedia(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.media {
		if s.media[i].ID == id {
			if len(s.media[i].UsedIn) > 0 {
				return fmt.Errorf("%w: %s is used by %d articles", core.ErrConflict, s.media[i].Filename, len(s.media[i].UsedIn))
			}
			s.media = append(s.media[:i], s.media[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: media %s not found", core.ErrValidation, id)
}

func (s *MemoryStore) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *MemoryStore) UpdateSettings(patch SettingsPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.SiteName != nil {
		s.settings.SiteName = *patch.SiteName
	}
	if patch.Tagline != nil {
		s.settings.Tagline = *patch.Tagline
	}
	if patch.BrandPrimary != nil {
		s.settings.BrandPrimary = *patch.BrandPrimary
	}
	if patch.ReviewRequired != nil {
		s.settings.ReviewRequired = *patch.ReviewRequired
	}
	if patch.DefaultStatus != nil {
		s.settings.DefaultStatus = *patch.DefaultStatus
	}
	if patch.CommentsEnabled != nil {
		s.settings.CommentsEnabled = *patch.CommentsEnabled
	}
	if patch.AutoModeration != nil {
		s.settings.AutoModeration = *patch.AutoModeration
	}

	return s.save()
}

func (s *MemoryStore) SidebarCollapsed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidebar
}

func (s *MemoryStore) SetSidebarCollapsed(collapsed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebar = collapsed
	return s.save()
}
