package sqldb

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"github.com/wartasekolah/warta/core"
)

func newArticleDBMock(t *testing.T) (*ArticleDB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.MatchExpectationsInOrder(false)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS article").WillReturnResult(sqlmock.NewResult(0, 0))
	for i := 0; i < 13; i++ {
		mock.ExpectPrepare("")
	}

	return NewArticleDB(db), mock
}

func TestPublishPredicate(t *testing.T) {

	articleDB, mock := newArticleDBMock(t)

	// one row matched: article was draft or in review, unpublished
	mock.ExpectExec("UPDATE article SET status = 'published'").
		WithArgs(int64(3000), int64(3000), 5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := articleDB.Publish(5, 3000)
	require.NoError(t, err)
	require.True(t, ok)

	// no row matched: already published, archived or missing
	mock.ExpectExec("UPDATE article SET status = 'published'").
		WithArgs(int64(4000), int64(4000), 5).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = articleDB.Publish(5, 4000)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArchivePredicate(t *testing.T) {

	articleDB, mock := newArticleDBMock(t)

	mock.ExpectExec("UPDATE article SET status = 'archived'").
		WithArgs(int64(5000), 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := articleDB.Archive(7, 5000)
	require.NoError(t, err)
	require.True(t, ok)

	mock.ExpectExec("UPDATE article SET status = 'archived'").
		WithArgs(int64(6000), 7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = articleDB.Archive(7, 6000)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusAsAuthorPredicate(t *testing.T) {

	articleDB, mock := newArticleDBMock(t)

	mock.ExpectExec("UPDATE article SET status = ").
		WithArgs("in_review", int64(2000), 5, 3, "draft").
		WillReturnResult(sqlmock.NewResult(0, 1))

	ok, err := articleDB.UpdateStatusAsAuthor(5, 3, core.StatusDraft, core.StatusInReview, 2000)
	require.NoError(t, err)
	require.True(t, ok)

	// wrong author or wrong state: zero rows
	mock.ExpectExec("UPDATE article SET status = ").
		WithArgs("in_review", int64(2000), 5, 4, "draft").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err = articleDB.UpdateStatusAsAuthor(5, 4, core.StatusDraft, core.StatusInReview, 2000)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertArticleRoundsTripTags(t *testing.T) {

	articleDB, mock := newArticleDBMock(t)

	mock.ExpectExec("INSERT INTO article").
		WithArgs("slug", "Judul", "ringkasan", "isi", "draft", "kegiatan", 3, "pensi,seni", int64(100), int64(100)).
		WillReturnResult(sqlmock.NewResult(42, 1))

	var a = core.Article{
		Slug:      "slug",
		Title:     "Judul",
		Summary:   "ringkasan",
		Content:   "isi",
		Status:    core.StatusDraft,
		Category:  "kegiatan",
		AuthorID:  3,
		Tags:      []string{"pensi", "seni"},
		TsCreated: 100,
		TsUpdated: 100,
	}
	require.NoError(t, articleDB.InsertArticle(&a))
	require.Equal(t, 42, a.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetArticleScansTags(t *testing.T) {

	articleDB, mock := newArticleDBMock(t)

	var columns = []string{"id", "slug", "title", "summary", "content", "status", "category", "author", "author_name", "tags", "views", "comments", "ts_created", "ts_updated", "ts_published"}

	mock.ExpectQuery("SELECT .+ FROM article a LEFT JOIN profile p .+ WHERE a.id = ").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(5, "slug", "Judul", "", "isi", "published", "kegiatan", 3, "Budi", "pensi,seni", 12, 0, 100, 200, 200))

	a, err := articleDB.GetArticle(5)
	require.NoError(t, err)
	require.Equal(t, core.StatusPublished, a.Status)
	require.Equal(t, []string{"pensi", "seni"}, a.Tags)
	require.Equal(t, "Budi", a.AuthorName)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsNotFound(t *testing.T) {

	articleDB, mock := newArticleDBMock(t)

	mock.ExpectQuery("SELECT .+ WHERE a.slug = ").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := articleDB.GetArticleBySlug("missing")
	require.Error(t, err)
	require.True(t, articleDB.IsNotFound(err))
}
