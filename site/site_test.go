package site

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/rs/zerolog"
	"github.com/wartasekolah/warta/core"
	"github.com/wartasekolah/warta/staticdata"
)

// emptyArticleDB simulates a fresh backend without published content.
type emptyArticleDB struct {
	err error // if set, every read fails
}

var errNotFound = errors.New("not found")

func (f *emptyArticleDB) AddView(id int) error                  { return nil }
func (f *emptyArticleDB) CountByStatus() (map[core.Status]int, error) {
	return map[core.Status]int{}, f.err
}
func (f *emptyArticleDB) DeleteArticle(id int) error { return nil }
func (f *emptyArticleDB) GetAllArticles(limit, offset int) ([]core.Article, error) {
	return nil, f.err
}
func (f *emptyArticleDB) GetArticle(id int) (*core.Article, error) { return nil, errNotFound }
func (f *emptyArticleDB) GetArticleBySlug(slug string) (*core.Article, error) {
	return nil, errNotFound
}
func (f *emptyArticleDB) GetByAuthor(authorID int) ([]core.Article, error) { return nil, f.err }
func (f *emptyArticleDB) GetPublished(limit, offset int) ([]core.Article, error) {
	return nil, f.err
}
func (f *emptyArticleDB) InsertArticle(a *core.Article) error { return f.err }
func (f *emptyArticleDB) IsNotFound(err error) bool           { return errors.Is(err, errNotFound) }
func (f *emptyArticleDB) SlugExists(slug string) (bool, error) { return false, f.err }
func (f *emptyArticleDB) Archive(id int, ts int64) (bool, error) { return false, f.err }
func (f *emptyArticleDB) Publish(id int, ts int64) (bool, error) { return false, f.err }
func (f *emptyArticleDB) UpdateStatusAsAuthor(id, authorID int, from, to core.Status, ts int64) (bool, error) {
	return false, f.err
}

type emptyCategoryDB struct{}

func (emptyCategoryDB) DeleteCategory(id int) (bool, error)                   { return false, nil }
func (emptyCategoryDB) GetAllCategories() ([]core.Category, error)            { return nil, nil }
func (emptyCategoryDB) GetCategory(id int) (*core.Category, error)            { return nil, errNotFound }
func (emptyCategoryDB) GetCategoryBySlug(slug string) (*core.Category, error) { return nil, errNotFound }
func (emptyCategoryDB) InsertCategory(c *core.Category) error                 { return nil }
func (emptyCategoryDB) IsNotFound(err error) bool                             { return errors.Is(err, errNotFound) }
func (emptyCategoryDB) UpdateCategory(c *core.Category) error                 { return nil }

type emptyProfileDB struct{}

func (emptyProfileDB) CountProfiles() (int, error)                       { return 0, nil }
func (emptyProfileDB) DeleteProfile(id int) error                        { return nil }
func (emptyProfileDB) GetAllProfiles(limit, offset int) ([]core.Profile, error) { return nil, nil }
func (emptyProfileDB) GetProfile(id int) (*core.Profile, error)          { return nil, errNotFound }
func (emptyProfileDB) GetProfileByUsername(username string) (*core.Profile, error) {
	return nil, errNotFound
}
func (emptyProfileDB) InsertProfile(name, username, email string, role core.Role) (*core.Profile, error) {
	return nil, errNotFound
}
func (emptyProfileDB) IsNotFound(err error) bool { return errors.Is(err, errNotFound) }
func (emptyProfileDB) LoginProfile(username, password string) (*core.Profile, error) {
	return nil, errNotFound
}
func (emptyProfileDB) SetAvatar(id int, avatarRef string) error { return nil }
func (emptyProfileDB) SetName(id int, name string) error        { return nil }
func (emptyProfileDB) SetPassword(id int, password string) error { return nil }
func (emptyProfileDB) SetRole(id int, role core.Role) (bool, error) { return false, nil }
func (emptyProfileDB) UsernameExists(username string) (bool, error) { return false, nil }

func newTestHandler(t *testing.T, articles core.ArticleDB) http.Handler {
	t.Helper()

	data, err := staticdata.Load()
	if err != nil {
		t.Fatal(err)
	}

	var db = &core.CoreDB{
		ArticleDB:          articles,
		CategoryDB:         emptyCategoryDB{},
		ProfileDB:          emptyProfileDB{},
		SessionManager:     scs.New(),
		Log:                zerolog.Nop(),
		FallbackArticles:   data.Articles,
		FallbackCategories: data.Categories,
	}

	return db.SessionManager.LoadAndSave(NewSiteRouter(db, data))
}

func TestHomeServesFallback(t *testing.T) {

	handler := newTestHandler(t, &emptyArticleDB{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var body = rec.Body.String()
	if !strings.Contains(body, "juara-lomba-jurnalistik-tingkat-kota") {
		t.Fatal("expected the bundled sample articles")
	}
	if !strings.Contains(body, "Agenda terdekat") {
		t.Fatal("expected the events block")
	}
}

func TestHomeServesFallbackOnBackendError(t *testing.T) {

	handler := newTestHandler(t, &emptyArticleDB{err: errors.New("connection refused")})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("a dead backend must not break the front page, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "juara-lomba-jurnalistik-tingkat-kota") {
		t.Fatal("expected the bundled sample articles")
	}
}

func TestArticleNotFound(t *testing.T) {

	handler := newTestHandler(t, &emptyArticleDB{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/artikel/tidak-ada", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d", rec.Code)
	}
}

func TestLoginRedirects(t *testing.T) {

	handler := newTestHandler(t, &emptyArticleDB{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status: got %d", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/backend/login" {
		t.Fatalf("location: got %q", got)
	}
}

func TestStaticPages(t *testing.T) {

	handler := newTestHandler(t, &emptyArticleDB{})

	for path, want := range map[string]string{
		"/tentang": "Tentang Warta Sekolah",
		"/agenda":  "Agenda",
		"/ekskul":  "Ekstrakurikuler",
		"/pedoman": "Pedoman Redaksi",
	} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("%s: expected %q", path, want)
		}
	}
}
