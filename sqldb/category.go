package sqldb

import (
	"database/sql"
	"errors"

	"github.com/wartasekolah/warta/core"
)

type CategoryDB struct {
	*sql.DB
	delete    *sql.Stmt
	get       *sql.Stmt
	getAll    *sql.Stmt
	getBySlug *sql.Stmt
	insert    *sql.Stmt
	update    *sql.Stmt
}

// article count is denormalized into the result set by a correlated subquery
const categoryColumns = `c.id, c.name, c.slug, c.description, c.color, c.ts_created,
	(SELECT COUNT(1) FROM article a WHERE a.category = c.slug)`

func NewCategoryDB(db *sql.DB) *CategoryDB {

	db.Exec(
		`CREATE TABLE IF NOT EXISTS category (
			id INTEGER PRIMARY KEY,
			name varchar(64) NOT NULL,
			slug varchar(64) NOT NULL,
			description text NOT NULL DEFAULT '',
			color varchar(16) NOT NULL DEFAULT '',
			ts_created bigint NOT NULL,
			UNIQUE(slug)
		);`)

	var categoryDB = &CategoryDB{}
	categoryDB.DB = db
	// the predicate repeats the article-count guard, so a concurrent insert can't orphan articles
	categoryDB.delete = mustPrepare(db, `DELETE FROM category WHERE id = ?
		AND NOT EXISTS (SELECT 1 FROM article a WHERE a.category = category.slug)`)
	categoryDB.get = mustPrepare(db, "SELECT "+categoryColumns+" FROM category c WHERE c.id = ? LIMIT 1")
	categoryDB.getAll = mustPrepare(db, "SELECT "+categoryColumns+" FROM category c ORDER BY c.name")
	categoryDB.getBySlug = mustPrepare(db, "SELECT "+categoryColumns+" FROM category c WHERE c.slug = ? LIMIT 1")
	categoryDB.insert = mustPrepare(db, "INSERT INTO category (name, slug, description, color, ts_created) VALUES (?, ?, ?, ?, ?)")
	categoryDB.update = mustPrepare(db, "UPDATE category SET name = ?, description = ?, color = ? WHERE id = ?")
	return categoryDB
}

func (db *CategoryDB) IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func scanCategory(row interface{ Scan(...interface{}) error }) (*core.Category, error) {
	var c core.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Color, &c.TsCreated, &c.ArticleCount)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (db *CategoryDB) DeleteCategory(id int) (bool, error) {
	res, err := db.delete.Exec(id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (db *CategoryDB) GetAllCategories() ([]core.Category, error) {

	rows, err := db.getAll.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all = []core.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, *c)
	}
	return all, rows.Err()
}

func (db *CategoryDB) GetCategory(id int) (*core.Category, error) {
	return scanCategory(db.get.QueryRow(id))
}

func (db *CategoryDB) GetCategoryBySlug(slug string) (*core.Category, error) {
	return scanCategory(db.getBySlug.QueryRow(slug))
}

func (db *CategoryDB) InsertCategory(c *core.Category) error {

	res, err := db.insert.Exec(c.Name, c.Slug, c.Description, c.Color, c.TsCreated)
	if err != nil {
		return err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = int(id)
	return nil
}

func (db *CategoryDB) UpdateCategory(c *core.Category) error {
	_, err := db.update.Exec(c.Name, c.Description, c.Color, c.ID)
	return err
}
