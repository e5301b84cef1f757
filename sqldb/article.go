package sqldb

import (
	"database/sql"
	"errors"

	"github.com/wartasekolah/warta/core"
)

type ArticleDB struct {
	*sql.DB
	addView            *sql.Stmt
	archive            *sql.Stmt
	countByStatus      *sql.Stmt
	delete             *sql.Stmt
	get                *sql.Stmt
	getAll             *sql.Stmt
	getByAuthor        *sql.Stmt
	getBySlug          *sql.Stmt
	getPublished       *sql.Stmt
	insert             *sql.Stmt
	publish            *sql.Stmt
	slugExists         *sql.Stmt
	updateStatusAuthor *sql.Stmt
}

const articleColumns = `a.id, a.slug, a.title, a.summary, a.content, a.status, a.category, a.author, COALESCE(p.name, ''), a.tags, a.views, a.comments, a.ts_created, a.ts_updated, a.ts_published`

func NewArticleDB(db *sql.DB) *ArticleDB {

	db.Exec(
		`CREATE TABLE IF NOT EXISTS article (
			id INTEGER PRIMARY KEY,
			slug varchar(128) NOT NULL,
			title varchar(256) NOT NULL,
			summary text NOT NULL DEFAULT '',
			content text NOT NULL DEFAULT '',
			status varchar(16) NOT NULL DEFAULT 'draft',
			category varchar(64) NOT NULL DEFAULT '',
			author int(11) NOT NULL,
			tags text NOT NULL DEFAULT '',
			views int(11) NOT NULL DEFAULT 0,
			comments int(11) NOT NULL DEFAULT 0,
			ts_created bigint NOT NULL,
			ts_updated bigint NOT NULL,
			ts_published bigint NOT NULL DEFAULT 0,
			UNIQUE(slug)
		);`)

	var articleDB = &ArticleDB{}
	articleDB.DB = db
	articleDB.addView = mustPrepare(db, "UPDATE article SET views = views + 1 WHERE id = ?")
	articleDB.archive = mustPrepare(db, "UPDATE article SET status = 'archived', ts_updated = ? WHERE id = ? AND status != 'archived'")
	articleDB.countByStatus = mustPrepare(db, "SELECT status, COUNT(*) FROM article GROUP BY status")
	articleDB.delete = mustPrepare(db, "DELETE FROM article WHERE id = ?")
	articleDB.get = mustPrepare(db, "SELECT "+articleColumns+" FROM article a LEFT JOIN profile p ON p.id = a.author WHERE a.id = ? LIMIT 1")
	articleDB.getAll = mustPrepare(db, "SELECT "+articleColumns+" FROM article a LEFT JOIN profile p ON p.id = a.author ORDER BY a.ts_updated DESC LIMIT ? OFFSET ?")
	articleDB.getByAuthor = mustPrepare(db, "SELECT "+articleColumns+" FROM article a LEFT JOIN profile p ON p.id = a.author WHERE a.author = ? ORDER BY a.ts_updated DESC")
	articleDB.getBySlug = mustPrepare(db, "SELECT "+articleColumns+" FROM article a LEFT JOIN profile p ON p.id = a.author WHERE a.slug = ? LIMIT 1")
	articleDB.getPublished = mustPrepare(db, "SELECT "+articleColumns+" FROM article a LEFT JOIN profile p ON p.id = a.author WHERE a.status = 'published' ORDER BY a.ts_published DESC LIMIT ? OFFSET ?")
	articleDB.insert = mustPrepare(db, "INSERT INTO article (slug, title, summary, content, status, category, author, tags, ts_created, ts_updated) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
	// published_at is set exactly once, the predicate rejects everything already published or archived
	articleDB.publish = mustPrepare(db, "UPDATE article SET status = 'published', ts_published = ?, ts_updated = ? WHERE id = ? AND status IN ('draft', 'in_review') AND ts_published = 0")
	articleDB.slugExists = mustPrepare(db, "SELECT COUNT(1) FROM article WHERE slug = ?")
	articleDB.updateStatusAuthor = mustPrepare(db, "UPDATE article SET status = ?, ts_updated = ? WHERE id = ? AND author = ? AND status = ?")
	return articleDB
}

func (db *ArticleDB) IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func scanArticle(row interface{ Scan(...interface{}) error }) (*core.Article, error) {
	var a core.Article
	var status, tags string
	err := row.Scan(&a.ID, &a.Slug, &a.Title, &a.Summary, &a.Content, &status, &a.Category, &a.AuthorID, &a.AuthorName, &tags, &a.Views, &a.Comments, &a.TsCreated, &a.TsUpdated, &a.TsPublished)
	if err != nil {
		return nil, err
	}
	a.Status = core.Status(status)
	a.Tags = splitTags(tags)
	return &a, nil
}

func (db *ArticleDB) scanArticles(stmt *sql.Stmt, args ...interface{}) ([]core.Article, error) {

	rows, err := stmt.Query(args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all = []core.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, *a)
	}
	return all, rows.Err()
}

func (db *ArticleDB) AddView(id int) error {
	_, err := db.addView.Exec(id)
	return err
}

func (db *ArticleDB) Archive(id int, ts int64) (bool, error) {
	res, err := db.archive.Exec(ts, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (db *ArticleDB) CountByStatus() (map[core.Status]int, error) {

	rows, err := db.countByStatus.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts = make(map[core.Status]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[core.Status(status)] = count
	}
	return counts, rows.Err()
}

func (db *ArticleDB) DeleteArticle(id int) error {
	_, err := db.delete.Exec(id)
	return err
}

func (db *ArticleDB) GetAllArticles(limit, offset int) ([]core.Article, error) {
	return db.scanArticles(db.getAll, limit, offset)
}

func (db *ArticleDB) GetArticle(id int) (*core.Article, error) {
	return scanArticle(db.get.QueryRow(id))
}

func (db *ArticleDB) GetArticleBySlug(slug string) (*core.Article, error) {
	return scanArticle(db.getBySlug.QueryRow(slug))
}

func (db *ArticleDB) GetByAuthor(authorID int) ([]core.Article, error) {
	return db.scanArticles(db.getByAuthor, authorID)
}

func (db *ArticleDB) GetPublished(limit, offset int) ([]core.Article, error) {
	return db.scanArticles(db.getPublished, limit, offset)
}

func (db *ArticleDB) InsertArticle(a *core.Article) error {

	res, err := db.insert.Exec(a.Slug, a.Title, a.Summary, a.Content, string(a.Status), a.Category, a.AuthorID, joinTags(a.Tags), a.TsCreated, a.TsUpdated)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = int(id)
	return nil
}

func (db *ArticleDB) Publish(id int, ts int64) (bool, error) {
	res, err := db.publish.Exec(ts, ts, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (db *ArticleDB) SlugExists(slug string) (bool, error) {
	var count int
	err := db.slugExists.QueryRow(slug).Scan(&count)
	return count > 0, err
}

func (db *ArticleDB) UpdateStatusAsAuthor(id, authorID int, from, to core.Status, ts int64) (bool, error) {
	res, err := db.updateStatusAuthor.Exec(string(to), ts, id, authorID, string(from))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
