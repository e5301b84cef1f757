package core

import (
	"errors"
	"sort"
	"testing"

	"github.com/rs/zerolog"
)

var errFakeNotFound = errors.New("not found")

// fakeArticleDB is an in-memory ArticleDB with the same conditional-update
// semantics as the sql implementation.
type fakeArticleDB struct {
	articles map[int]*Article
	nextID   int
	err      error // if set, every call fails with it
}

func newFakeArticleDB() *fakeArticleDB {
	return &fakeArticleDB{articles: make(map[int]*Article), nextID: 1}
}

func (f *fakeArticleDB) AddView(id int) error {
	if f.err != nil {
		return f.err
	}
	if a, ok := f.articles[id]; ok {
		a.Views++
		return nil
	}
	return errFakeNotFound
}

func (f *fakeArticleDB) CountByStatus() (map[Status]int, error) {
	if f.err != nil {
		return nil, f.err
	}
	var counts = make(map[Status]int)
	for _, a := range f.articles {
		counts[a.Status]++
	}
	return counts, nil
}

func (f *fakeArticleDB) DeleteArticle(id int) error {
	if f.err != nil {
		return f.err
	}
	delete(f.articles, id)
	return nil
}

func (f *fakeArticleDB) GetAllArticles(limit, offset int) ([]Article, error) {
	if f.err != nil {
		return nil, f.err
	}
	var all []Article
	for _, a := range f.articles {
		all = append(all, *a)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all, nil
}

func (f *fakeArticleDB) GetArticle(id int) (*Article, error) {
	if f.err != nil {
		return nil, f.err
	}
	if a, ok := f.articles[id]; ok {
		var copied = *a
		return &copied, nil
	}
	return nil, errFakeNotFound
}

func (f *fakeArticleDB) GetArticleBySlug(slug string) (*Article, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, a := range f.articles {
		if a.Slug == slug {
			var copied = *a
			return &copied, nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeArticleDB) GetByAuthor(authorID int) ([]Article, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []Article
	for _, a := range f.articles {
		if a.AuthorID == authorID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (f *fakeArticleDB) GetPublished(limit, offset int) ([]Article, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []Article
	for _, a := range f.articles {
		if a.Status == StatusPublished {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].TsPublished > result[j].TsPublished })
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeArticleDB) InsertArticle(a *Article) error {
	if f.err != nil {
		return f.err
	}
	a.ID = f.nextID
	f.nextID++
	var copied = *a
	f.articles[a.ID] = &copied
	return nil
}

func (f *fakeArticleDB) IsNotFound(err error) bool {
	return errors.Is(err, errFakeNotFound)
}

func (f *fakeArticleDB) SlugExists(slug string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, a := range f.articles {
		if a.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeArticleDB) Archive(id int, ts int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	a, ok := f.articles[id]
	if !ok || a.Status == StatusArchived {
		return false, nil
	}
	a.Status = StatusArchived
	a.TsUpdated = ts
	return true, nil
}

func (f *fakeArticleDB) Publish(id int, ts int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	a, ok := f.articles[id]
	if !ok || (a.Status != StatusDraft && a.Status != StatusInReview) || a.TsPublished != 0 {
		return false, nil
	}
	a.Status = StatusPublished
	a.TsPublished = ts
	a.TsUpdated = ts
	return true, nil
}

func (f *fakeArticleDB) UpdateStatusAsAuthor(id, authorID int, from, to Status, ts int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	a, ok := f.articles[id]
	if !ok || a.AuthorID != authorID || a.Status != from {
		return false, nil
	}
	a.Status = to
	a.TsUpdated = ts
	return true, nil
}

type fakeProfileDB struct {
	profiles map[int]*Profile
	nextID   int
	err      error
}

func newFakeProfileDB() *fakeProfileDB {
	return &fakeProfileDB{profiles: make(map[int]*Profile), nextID: 1}
}

func (f *fakeProfileDB) CountProfiles() (int, error) {
	return len(f.profiles), f.err
}

func (f *fakeProfileDB) DeleteProfile(id int) error {
	delete(f.profiles, id)
	return f.err
}

func (f *fakeProfileDB) GetAllProfiles(limit, offset int) ([]Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	var all []Profile
	for _, p := range f.profiles {
		all = append(all, *p)
	}
	return all, nil
}

func (f *fakeProfileDB) GetProfile(id int) (*Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.profiles[id]; ok {
		var copied = *p
		return &copied, nil
	}
	return nil, errFakeNotFound
}

func (f *fakeProfileDB) GetProfileByUsername(username string) (*Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.profiles {
		if p.Username == username {
			var copied = *p
			return &copied, nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeProfileDB) InsertProfile(name, username, email string, role Role) (*Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	var p = &Profile{ID: f.nextID, Name: name, Username: username, Email: email, Role: role}
	f.nextID++
	f.profiles[p.ID] = p
	var copied = *p
	return &copied, nil
}

func (f *fakeProfileDB) IsNotFound(err error) bool {
	return errors.Is(err, errFakeNotFound)
}

func (f *fakeProfileDB) LoginProfile(username, password string) (*Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.GetProfileByUsername(username)
}

func (f *fakeProfileDB) SetAvatar(id int, avatarRef string) error {
	if p, ok := f.profiles[id]; ok {
		p.AvatarRef = avatarRef
	}
	return f.err
}

func (f *fakeProfileDB) SetName(id int, name string) error {
	if p, ok := f.profiles[id]; ok {
		p.Name = name
	}
	return f.err
}

func (f *fakeProfileDB) SetPassword(id int, password string) error {
	return f.err
}

func (f *fakeProfileDB) SetRole(id int, role Role) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	p, ok := f.profiles[id]
	if !ok {
		return false, nil
	}
	p.Role = role
	return true, nil
}

func (f *fakeProfileDB) UsernameExists(username string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, p := range f.profiles {
		if p.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func newTestDB(t *testing.T) (*CoreDB, *fakeArticleDB, *fakeProfileDB) {
	t.Helper()
	var articles = newFakeArticleDB()
	var profiles = newFakeProfileDB()
	return &CoreDB{
		ArticleDB: articles,
		ProfileDB: profiles,
		Log:       zerolog.Nop(),
	}, articles, profiles
}
