package core

import (
	"errors"
	"regexp"
	"strings"
)

// 3-20 chars, lowercase alphanumerics and underscore
var usernameRegex = regexp.MustCompile(`^[a-z0-9_]{3,20}$`)

type Profile struct {
	ID        int
	Name      string
	Username  string
	Email     string
	AvatarRef string // filename in the profile's upload folder, empty if none
	Role      Role
	TsCreated int64
	TsUpdated int64
}

type ProfileDB interface {
	CountProfiles() (int, error)
	DeleteProfile(id int) error
	GetAllProfiles(limit, offset int) ([]Profile, error)
	GetProfile(id int) (*Profile, error)
	GetProfileByUsername(username string) (*Profile, error)
	InsertProfile(name, username, email string, role Role) (*Profile, error)
	IsNotFound(err error) bool
	LoginProfile(username, password string) (*Profile, error)
	SetAvatar(id int, avatarRef string) error
	SetName(id int, name string) error
	SetPassword(id int, password string) error
	SetRole(id int, role Role) (bool, error)
	UsernameExists(username string) (bool, error)
}

var ErrEmptyPassword = errors.New("refusing to set empty password")

// NormalizeUsername lowercases and trims. Validation happens separately.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func ValidUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// CreateProfile validates the username pattern and uniqueness, then inserts
// with the member role. Role assignment is a separate admin-only transition.
func (c *CoreDB) CreateProfile(name, username, email string) (*Profile, error) {

	username = NormalizeUsername(username)
	if !ValidUsername(username) {
		return nil, validationf("username must be 3-20 characters of a-z, 0-9 or underscore")
	}

	exists, err := c.ProfileDB.UsernameExists(username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, validationf("username %s is taken", username)
	}

	return c.ProfileDB.InsertProfile(strings.TrimSpace(name), username, strings.TrimSpace(email), Member)
}

// SetPassword shadows ProfileDB.SetPassword.
func (c *CoreDB) SetPassword(id int, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	return c.ProfileDB.SetPassword(id, password)
}

// UpdateOwnProfile is the self-service path. It can change the display name
// and nothing else; especially not the role.
func (c *CoreDB) UpdateOwnProfile(actor *Profile, name string) error {
	if actor == nil {
		return ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return validationf("name can't be empty")
	}
	return c.ProfileDB.SetName(actor.ID, name)
}
