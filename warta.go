package main

import (
	"bytes"
	"database/sql"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/alexedwards/scs/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/wartasekolah/warta/backend"
	"github.com/wartasekolah/warta/core"
	"github.com/wartasekolah/warta/mockstore"
	"github.com/wartasekolah/warta/site"
	"github.com/wartasekolah/warta/sqldb"
	"github.com/wartasekolah/warta/sqldb/mysql"
	"github.com/wartasekolah/warta/sqldb/sqlite3"
	"github.com/wartasekolah/warta/staticdata"
	"github.com/xo/dburl"
	"golang.org/x/crypto/ssh/terminal"
)

type prefixedResponseWriter struct {
	http.ResponseWriter
	prefix string // without trailing slash
}

// shadows the original WriteHeader func
func (w prefixedResponseWriter) WriteHeader(statusCode int) {
	// prepend prefix to Location header, so redirects work
	if w.prefix != "" {
		if location := w.Header().Get("Location"); len(location) > 0 && location[0] == '/' { // only absolute locations
			w.Header().Set("Location", w.prefix+location)
		}
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

// prefix should be without trailing slash
func handleStrip(prefix string, handler http.Handler) {
	http.Handle(
		prefix+"/", // http mux needs trailing slash
		http.StripPrefix(
			prefix,
			http.HandlerFunc(
				func(w http.ResponseWriter, r *http.Request) {
					w = &prefixedResponseWriter{w, prefix}
					handler.ServeHTTP(w, r)
				},
			),
		),
	)
}

func main() {

	var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	var dbArg string // is in both FlagSets

	// default FlagSet

	var base = flag.String("base", "", "strip off this `prefix` from every HTTP request and prepend it to every link")
	// MySQL: collation should be utf8mb4_unicode_ci
	flag.StringVar(&dbArg, "db", "sqlite3:warta.sqlite3?_busy_timeout=10000&_journal=WAL&_sync=NORMAL&cache=shared", "sql database url, see github.com/xo/dburl")
	var hmacKey = flag.String("hmac", "", "use this secret HMAC `key` for serving resized images")
	var listenAddr = flag.String("listen", "127.0.0.1:8080", "serve HTTP content at this `ip:port`")
	var demoConfig = flag.String("demo-config", "warta-demo.ini", "persist demo dashboard settings to this `file`")

	// init FlagSet

	var initFlags = flag.NewFlagSet("init", flag.ExitOnError)

	initFlags.StringVar(&dbArg, "db", "sqlite3:warta.sqlite3?_busy_timeout=10000&_journal=WAL&_sync=NORMAL&cache=shared", "sql database url, see github.com/xo/dburl") // copied from above
	var initInsert = initFlags.Bool("insert", false, "creates the given member, prompting for a password")
	var initMakeAdmin = initFlags.Bool("make-admin", false, "gives the admin role to the given member")
	var name = initFlags.String("name", "", "specifies a display `name`")
	var username = initFlags.String("user", "", "specifies a `username`")
	var email = initFlags.String("email", "", "specifies an email `address`")

	if len(os.Args) > 1 && os.Args[1] == "init" {
		initFlags.Parse(os.Args[2:])
	} else {
		flag.Parse()
	}

	// database

	dbURL, err := dburl.Parse(dbArg)
	if err != nil {
		log.Error().Err(err).Msg("could not parse database url")
		return
	}

	sqlDB, err := sql.Open(dbURL.Driver, dbURL.DSN)
	if err != nil {
		log.Error().Err(err).Msg("could not open sql database")
		return
	}

	if err = sqlDB.Ping(); err != nil {
		log.Error().Err(err).Msg("could not ping sql database")
		return
	}

	log.Info().Str("database", dbURL.String()).Msg("database opened")

	// base

	*base = strings.Trim(*base, "/")
	if *base != "" {
		*base = "/" + *base
	}

	// assemble stuff

	var sessionStore scs.Store
	switch dbURL.Driver {
	case "mysql":
		sessionStore = mysql.NewSessionStore(sqlDB)
	case "sqlite3":
		sessionStore = sqlite3.NewSessionStore(sqlDB)
	default:
		log.Error().Str("driver", dbURL.Driver).Msg("unknown database backend")
		return
	}

	fallback, err := staticdata.Load()
	if err != nil {
		log.Error().Err(err).Msg("could not load bundled sample content")
		return
	}

	db := &core.CoreDB{
		Log:                log,
		FallbackArticles:   fallback.Articles,
		FallbackCategories: fallback.Categories,
		HMACSecret:         *hmacKey,
	}

	db.ArticleDB = sqldb.NewArticleDB(sqlDB)
	db.CategoryDB = sqldb.NewCategoryDB(sqlDB)
	db.ProfileDB = sqldb.NewProfileDB(sqlDB)
	db.SqlDB = sqlDB

	if err := db.Init(sessionStore, *base); err != nil {
		log.Error().Err(err).Msg("init failed")
		return
	}

	defer func() {
		log.Info().Msg("closing database")
		sqlDB.Close()
	}()

	// init

	if initFlags.Parsed() {
		switch {
		case *initInsert:
			if *username != "" {
				insertProfile(db, *name, *username, *email)
			}
		case *initMakeAdmin:
			if *username != "" {
				makeAdmin(db, *username)
			}
		}
		return
	}

	mock, err := mockstore.NewMemoryStore(*demoConfig)
	if err != nil {
		log.Error().Err(err).Msg("could not create demo store")
		return
	}

	listen(db, mock, fallback, *listenAddr, *base)
}

func insertProfile(db *core.CoreDB, name, username, email string) {

	if name == "" {
		name = username
	}

	fmt.Printf("password for %s: ", username)
	pass1, err := terminal.ReadPassword(0)
	fmt.Println()
	if err != nil {
		db.Log.Error().Err(err).Msg("reading password")
		return
	}

	fmt.Printf("repeat password: ")
	pass2, err := terminal.ReadPassword(0)
	fmt.Println()
	if err != nil {
		db.Log.Error().Err(err).Msg("reading password")
		return
	}

	if !bytes.Equal(pass1, pass2) {
		db.Log.Error().Msg("passwords don't match")
		return
	}

	profile, err := db.CreateProfile(name, username, email)
	if err != nil {
		db.Log.Error().Err(err).Str("username", username).Msg("creating profile")
		return
	}

	if err := db.SetPassword(profile.ID, string(pass1)); err != nil {
		db.Log.Error().Err(err).Msg("setting password")
		return
	}

	db.Log.Info().Str("username", username).Msg("profile created")
}

func makeAdmin(db *core.CoreDB, username string) {

	profile, err := db.GetProfileByUsername(core.NormalizeUsername(username))
	if err != nil {
		db.Log.Error().Err(err).Str("username", username).Msg("getting profile")
		return
	}

	if ok, err := db.ProfileDB.SetRole(profile.ID, core.Admin); err != nil || !ok {
		db.Log.Error().Err(err).Msg("giving admin role")
		return
	}

	db.Log.Info().Str("username", username).Msg("admin role given")
}

func listen(db *core.CoreDB, mock mockstore.Store, fallback *staticdata.Data, addr string, base string) {

	// mux
	//
	// golang mux recovers from panics, so the program won't crash

	var waitingControllers sync.WaitGroup

	handleStrip(base+"/assets", http.FileServer(http.Dir("assets")))
	handleStrip(base+"/backend", backend.NewBackendRouter(db, mock, base))
	handleStrip(base+"/static", http.FileServer(http.Dir("static")))
	handleStrip(base+"/upload", db.Uploads)

	var siteRouter = site.NewSiteRouter(db, fallback)

	handleStrip(
		base,
		http.HandlerFunc(
			func(w http.ResponseWriter, req *http.Request) {
				waitingControllers.Add(1)
				defer waitingControllers.Done()
				siteRouter.ServeHTTP(w, req)
			},
		),
	)

	// listener and listen

	sigintChannel := make(chan os.Signal, 1)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		db.Log.Error().Err(err).Msg("listening")
		return
	}

	db.Log.Info().Str("addr", addr).Msg("listening")

	httpSrv := &http.Server{
		Handler:      db.SessionManager.LoadAndSave(http.DefaultServeMux),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if err := httpSrv.Serve(listener); err != nil {

			// don't panic, we want a graceful shutdown
			if err != http.ErrServerClosed {
				db.Log.Error().Err(err).Msg("serving")
			}

			// ensure graceful shutdown
			sigintChannel <- os.Interrupt
		}
	}()

	// graceful shutdown

	signal.Notify(sigintChannel, os.Interrupt, syscall.SIGTERM) // SIGINT (Interrupt) or SIGTERM
	<-sigintChannel

	db.Log.Info().Msg("shutting down")
	httpSrv.Close()

	waitingControllers.Wait()
}
