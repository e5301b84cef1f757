package sqldb

import (
	"database/sql"
	"errors"
	"time"

	"github.com/wartasekolah/warta/core"
	"golang.org/x/crypto/bcrypt"
)

var ErrAuth = errors.New("wrong username or password")

type ProfileDB struct {
	*sql.DB
	count          *sql.Stmt
	delete         *sql.Stmt
	get            *sql.Stmt
	getAll         *sql.Stmt
	getByUsername  *sql.Stmt
	insert         *sql.Stmt
	login          *sql.Stmt
	setAvatar      *sql.Stmt
	setName        *sql.Stmt
	setPassword    *sql.Stmt
	setRole        *sql.Stmt
	usernameExists *sql.Stmt
}

const profileColumns = `id, name, username, email, avatar, role, ts_created, ts_updated`

func NewProfileDB(db *sql.DB) *ProfileDB {

	db.Exec(
		`CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY,
			name varchar(128) NOT NULL DEFAULT '',
			username varchar(20) NOT NULL,
			email varchar(128) NOT NULL DEFAULT '',
			avatar varchar(128) NOT NULL DEFAULT '',
			role varchar(16) NOT NULL DEFAULT 'member',
			password varchar(64) NOT NULL DEFAULT '',
			ts_created bigint NOT NULL,
			ts_updated bigint NOT NULL,
			UNIQUE(username)
		);`)

	var profileDB = &ProfileDB{}
	profileDB.DB = db
	profileDB.count = mustPrepare(db, "SELECT COUNT(1) FROM profile")
	profileDB.delete = mustPrepare(db, "DELETE FROM profile WHERE id = ?")
	profileDB.get = mustPrepare(db, "SELECT "+profileColumns+" FROM profile WHERE id = ? LIMIT 1")
	profileDB.getAll = mustPrepare(db, "SELECT "+profileColumns+" FROM profile ORDER BY username LIMIT ? OFFSET ?")
	profileDB.getByUsername = mustPrepare(db, "SELECT "+profileColumns+" FROM profile WHERE username = ? LIMIT 1")
	profileDB.insert = mustPrepare(db, "INSERT INTO profile (name, username, email, role, ts_created, ts_updated) VALUES (?, ?, ?, ?, ?, ?)") // empty password field is safe, no bcrypt hash equals it
	profileDB.login = mustPrepare(db, "SELECT id, password FROM profile WHERE username = ?")
	profileDB.setAvatar = mustPrepare(db, "UPDATE profile SET avatar = ?, ts_updated = ? WHERE id = ?")
	profileDB.setName = mustPrepare(db, "UPDATE profile SET name = ?, ts_updated = ? WHERE id = ?")
	profileDB.setPassword = mustPrepare(db, "UPDATE profile SET password = ?, ts_updated = ? WHERE id = ?")
	profileDB.setRole = mustPrepare(db, "UPDATE profile SET role = ?, ts_updated = ? WHERE id = ?")
	profileDB.usernameExists = mustPrepare(db, "SELECT COUNT(1) FROM profile WHERE username = ?")
	return profileDB
}

func (db *ProfileDB) IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func scanProfile(row interface{ Scan(...interface{}) error }) (*core.Profile, error) {
	var p core.Profile
	var role string
	err := row.Scan(&p.ID, &p.Name, &p.Username, &p.Email, &p.AvatarRef, &role, &p.TsCreated, &p.TsUpdated)
	if err != nil {
		return nil, err
	}
	p.Role = core.Role(role)
	return &p, nil
}

func (db *ProfileDB) CountProfiles() (int, error) {
	var count int
	err := db.count.QueryRow().Scan(&count)
	return count, err
}

func (db *ProfileDB) DeleteProfile(id int) error {
	_, err := db.delete.Exec(id)
	return err
}

func (db *ProfileDB) GetAllProfiles(limit, offset int) ([]core.Profile, error) {

	rows, err := db.getAll.Query(limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all = []core.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, *p)
	}
	return all, rows.Err()
}

func (db *ProfileDB) GetProfile(id int) (*core.Profile, error) {
	return scanProfile(db.get.QueryRow(id))
}

func (db *ProfileDB) GetProfileByUsername(username string) (*core.Profile, error) {
	return scanProfile(db.getByUsername.QueryRow(username))
}

func (db *ProfileDB) InsertProfile(name, username, email string, role core.Role) (*core.Profile, error) {

	var ts = time.Now().Unix()
	res, err := db.insert.Exec(name, username, email, string(role), ts, ts)
	if err != nil {
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &core.Profile{
		ID:        int(id),
		Name:      name,
		Username:  username,
		Email:     email,
		Role:      role,
		TsCreated: ts,
		TsUpdated: ts,
	}, nil
}

func (db *ProfileDB) LoginProfile(username, password string) (*core.Profile, error) {

	var id int
	var hash string
	err := db.login.QueryRow(username).Scan(&id, &hash)
	if err == sql.ErrNoRows {
		return nil, ErrAuth // user not found
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrAuth // wrong password
	}

	return db.GetProfile(id)
}

func (db *ProfileDB) SetAvatar(id int, avatarRef string) error {
	_, err := db.setAvatar.Exec(avatarRef, time.Now().Unix(), id)
	return err
}

func (db *ProfileDB) SetName(id int, name string) error {
	_, err := db.setName.Exec(name, time.Now().Unix(), id)
	return err
}

func (db *ProfileDB) SetPassword(id int, password string) error {

	if password == "" {
		return errors.New("no password given")
	}
	if id == 0 {
		return errors.New("can't set password of profile 0")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.setPassword.Exec(string(hash), time.Now().Unix(), id)
	return err
}

func (db *ProfileDB) SetRole(id int, role core.Role) (bool, error) {
	res, err := db.setRole.Exec(string(role), time.Now().Unix(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (db *ProfileDB) UsernameExists(username string) (bool, error) {
	var count int
	err := db.usernameExists.QueryRow(username).Scan(&count)
	return count > 0, err
}
