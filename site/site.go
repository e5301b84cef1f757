// Package site serves the public pages: front page, news feed, article
// detail, search and the static club pages.
package site

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/wartasekolah/warta/core"
	"github.com/wartasekolah/warta/staticdata"
	"github.com/wartasekolah/warta/util"
)

type context struct {
	*core.Request
	db   *core.CoreDB
	data *staticdata.Data
}

func (ctx *context) Events() []staticdata.Event {
	return ctx.data.Events
}

func (ctx *context) Clubs() []staticdata.Club {
	return ctx.data.Clubs
}

func middleware(db *core.CoreDB, data *staticdata.Data, f func(http.ResponseWriter, *http.Request, *context, httprouter.Params) error) func(http.ResponseWriter, *http.Request, httprouter.Params) {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {

		var ctx = &context{
			Request: db.NewRequest(w, req),
			db:      db,
			data:    data,
		}
		defer ctx.Cleanup()

		if err := f(w, req, ctx, params); err != nil {
			if ctx.db.ArticleDB.IsNotFound(err) {
				http.NotFound(w, req)
				return
			}
			db.Log.Warn().Err(err).Str("path", req.URL.Path).Msg("site handler")
			errorTmpl.Execute(w, struct {
				*context
				Err error
			}{
				context: ctx,
				Err:     err,
			})
		}
	}
}

var errorTmpl = tmpl(`
	<div class="alert alert-danger" role="alert">
		Terjadi kesalahan: {{ .Err }}
	</div>`)

func NewSiteRouter(db *core.CoreDB, data *staticdata.Data) http.Handler {

	var router = httprouter.New()

	router.GET("/", middleware(db, data, home))
	router.GET("/berita", middleware(db, data, feed))
	router.GET("/artikel/:slug", middleware(db, data, article))
	router.GET("/cari", middleware(db, data, search))
	router.GET("/tentang", middleware(db, data, about))
	router.GET("/agenda", middleware(db, data, events))
	router.GET("/ekskul", middleware(db, data, clubs))
	router.GET("/pedoman", middleware(db, data, guidelines))

	// the dashboard has its own login form
	router.GET("/login", func(w http.ResponseWriter, req *http.Request, _ httprouter.Params) {
		http.Redirect(w, req, "/backend/login", http.StatusSeeOther)
	})

	return router
}

func tmpl(text string) *template.Template {
	t := template.Must(siteTmpl.Clone())
	t = template.Must(t.Parse(`{{ define "content" }}` + text + `{{ end }}`))
	return t
}

var siteTmpl = template.Must(template.New("site").Funcs(
	template.FuncMap{
		"JoinTags": func(tags []string) string {
			return strings.Join(tags, ", ")
		},
		"Teaser": func(a core.Article) string {
			if a.Summary != "" {
				return a.Summary
			}
			return util.Excerpt(markdownParser.RenderToString([]byte(a.Content)), 160)
		},
	},
).Parse(`
<!DOCTYPE html>
<html lang="id">
	<head>
		<link rel="stylesheet" type="text/css" href="/assets/bootstrap-4.4.1.min.css">
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1">
		<title>Warta Sekolah</title>
	</head>
	<body>

		<nav class="navbar navbar-expand-md navbar-light bg-light">
			<a class="navbar-brand" href="/">Warta Sekolah</a>
			<ul class="navbar-nav">
				<li class="nav-item"><a class="nav-link" href="/berita">Berita</a></li>
				<li class="nav-item"><a class="nav-link" href="/agenda">Agenda</a></li>
				<li class="nav-item"><a class="nav-link" href="/ekskul">Ekskul</a></li>
				<li class="nav-item"><a class="nav-link" href="/tentang">Tentang</a></li>
				<li class="nav-item"><a class="nav-link" href="/cari">Cari</a></li>
			</ul>
			<ul class="navbar-nav ml-auto">
				{{ if .LoggedIn }}
					{{ if .Viewer.CanAccessDashboard }}
						<li class="nav-item"><a class="nav-link" href="/backend/overview">Dasbor</a></li>
					{{ end }}
					<li class="nav-item"><a class="nav-link" href="/backend/logout">Keluar ({{ .Viewer.Profile.Name }})</a></li>
				{{ else }}
					<li class="nav-item"><a class="nav-link" href="/login">Masuk</a></li>
				{{ end }}
			</ul>
		</nav>

		<div class="container pt-3">
			{{ .RenderNotifications }}
			{{ template "content" . }}
		</div>

		<footer class="text-center text-muted py-4">
			<small>Warta Sekolah &middot; dari kami, untuk kita</small>
		</footer>
	</body>
</html>`))
