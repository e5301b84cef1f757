package core

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/rs/zerolog"
	"github.com/wartasekolah/warta/filestore"
	"github.com/wartasekolah/warta/upload"
	"github.com/wartasekolah/warta/util"
)

// CoreDB aggregates the store interfaces and the session manager. main
// assembles it from sqldb implementations; tests swap in fakes.
type CoreDB struct {
	ArticleDB
	CategoryDB
	ProfileDB
	SessionManager *scs.SessionManager
	Uploads        upload.Store
	Log            zerolog.Logger

	// bundled sample content, served when the live listing is empty or errors
	FallbackArticles   []Article
	FallbackCategories []Category

	HMACSecret string  // exported because main sets it
	SqlDB      *sql.DB // kept for ad-hoc statements in handlers
}

func (c *CoreDB) Init(sessionStore scs.Store, cookiePath string) error {

	if c.HMACSecret == "" {
		var err error
		c.HMACSecret, err = util.RandomString32()
		if err != nil {
			return fmt.Errorf("generating random HMAC secret: %v", err)
		}
		c.Log.Info().Msg("generated random HMAC secret")
	}

	c.SessionManager = scs.New()
	if sessionStore != nil {
		c.SessionManager.Store = sessionStore
	}
	c.SessionManager.Cookie.Path = cookiePath + "/"
	c.SessionManager.Cookie.Persist = false                 // don't store the cookie across browser sessions
	c.SessionManager.Cookie.SameSite = http.SameSiteLaxMode // good CSRF protection if HTTP GET doesn't modify anything
	c.SessionManager.Cookie.Secure = false                  // else running on localhost or behind a http proxy fails
	c.SessionManager.IdleTimeout = 12 * time.Hour
	c.SessionManager.Lifetime = 720 * time.Hour

	if c.Uploads == nil {

		resizer, err := filestore.FindResizer()
		if err != nil {
			c.Log.Warn().Err(err).Msg("serving original image sizes only")
		} else {
			c.Log.Info().Str("resizer", resizer.Name()).Msg("using JPEG resizer")
		}

		c.Uploads = &filestore.Store{
			CacheDir:   "./cache",
			UploadDir:  "./uploads",
			HMACSecret: []byte(c.HMACSecret),
			Resizer:    resizer,
			Log:        c.Log,
		}
	}

	return nil
}

// DashboardCounts returns article totals per status for the overview page.
func (c *CoreDB) DashboardCounts() (map[Status]int, error) {
	return c.ArticleDB.CountByStatus()
}
