package backend

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/julienschmidt/httprouter"
	"github.com/wartasekolah/warta/core"
	"github.com/wartasekolah/warta/mockstore"
)

// we need the CoreDB and the demo store in the backend
type context struct {
	*core.Request
	Prefix string // with trailing slash
	db     *core.CoreDB
	mock   mockstore.Store
}

func (ctx *context) Mock() mockstore.Store {
	return ctx.mock
}

func (ctx *context) SidebarCollapsed() bool {
	return ctx.mock.SidebarCollapsed()
}

// AvatarThumb returns a signed thumbnail URL for a profile's avatar, empty
// when no avatar is set.
func (ctx *context) AvatarThumb(p core.Profile, size int) string {
	if p.AvatarRef == "" || ctx.db.Uploads == nil {
		return ""
	}
	return ctx.db.Uploads.ThumbURL(p.ID, p.AvatarRef, size, size)
}

// OwnAvatarThumb is the avatar preview on the profile page.
func (ctx *context) OwnAvatarThumb() string {
	if actor := ctx.Actor(); actor != nil {
		return ctx.AvatarThumb(*actor, 160)
	}
	return ""
}

func middleware(db *core.CoreDB, mock mockstore.Store, prefix string, requireDashboard bool, f func(http.ResponseWriter, *http.Request, *context, httprouter.Params) error) func(http.ResponseWriter, *http.Request, httprouter.Params) {
	return func(w http.ResponseWriter, req *http.Request, params httprouter.Params) {

		var request = db.NewRequest(w, req)

		var ctx = &context{
			Prefix:  prefix + "/backend/",
			Request: request,
			db:      db,
			mock:    mock,
		}
		defer ctx.Cleanup()

		if requireDashboard {
			if !ctx.LoggedIn() {
				// the prefixed response writer prepends the mount point
				ctx.SeeOther("/login?next=%s", url.QueryEscape(req.URL.Path))
				return
			}
			if !ctx.Viewer.CanAccessDashboard {
				errorTmpl.Execute(w, struct {
					*context
					Err error
				}{
					context: ctx,
					Err:     core.ErrForbidden,
				})
				return
			}
		}

		if err := f(w, req, ctx, params); err != nil {
			db.Log.Warn().Err(err).Str("path", req.URL.Path).Msg("backend handler")
			// probably no template has been executed, so execute error template
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
		{{ .Err }}
	</div>`)

func NewBackendRouter(db *core.CoreDB, mock mockstore.Store, prefix string) http.Handler {

	var router = httprouter.New()

	var GETAndPOST = func(path string, handle httprouter.Handle) {
		router.GET(path, handle)
		router.POST(path, handle)
	}

	// public
	router.GET("/", middleware(db, mock, prefix, false, root))
	GETAndPOST("/login", middleware(db, mock, prefix, false, login))

	// private
	GETAndPOST("/articles", middleware(db, mock, prefix, true, articles))
	GETAndPOST("/categories", middleware(db, mock, prefix, true, categories))
	GETAndPOST("/demo", middleware(db, mock, prefix, true, demo))
	router.GET("/logout", middleware(db, mock, prefix, true, logout))
	GETAndPOST("/media", middleware(db, mock, prefix, true, media))
	router.GET("/overview", middleware(db, mock, prefix, true, overview))
	GETAndPOST("/profile", middleware(db, mock, prefix, true, profile))
	GETAndPOST("/settings", middleware(db, mock, prefix, true, settings))
	GETAndPOST("/user/:id", middleware(db, mock, prefix, true, user))
	GETAndPOST("/users", middleware(db, mock, prefix, true, users))
	GETAndPOST("/write", middleware(db, mock, prefix, true, write))

	return router
}

func tmpl(text string) *template.Template {
	t := template.Must(backendTmpl.Clone())
	t = template.Must(t.Parse(`{{ define "content" }}` + text + `{{ end }}`))
	return t
}

var backendTmpl = template.Must(template.New("backend").Funcs(
	template.FuncMap{
		"StatusBadge": func(s core.Status) template.HTML {
			var color string
			switch s {
			case core.StatusPublished:
				color = "success"
			case core.StatusInReview:
				color = "warning"
			case core.StatusScheduled:
				color = "info"
			case core.StatusArchived:
				color = "dark"
			default:
				color = "secondary"
			}
			return template.HTML(`<span class="badge badge-` + color + `">` + template.HTMLEscapeString(s.Label()) + `</span>`)
		},
	},
).Parse(`
<!DOCTYPE html>
<html lang="id">
	<head>
		<base href="{{ .Prefix }}">
		<link rel="stylesheet" type="text/css" href="/assets/bootstrap-4.4.1.min.css">
		<meta charset="utf-8">
		<title>Dasbor Redaksi</title>

		<style>

			body {
				padding-bottom: 1rem;
			}

			h1 {
				font-size: 1.5rem !important;
				margin: 1rem 0 0.7rem !important;
			}

			h2 {
				font-size: 1.3rem !important;
				margin: 0.2rem 0 0.5rem !important;
			}

			table {
				margin-top: 0.5rem;
				border-bottom: 1px solid #dee2e6;
			}

			.sidebar-collapsed .nav-label {
				display: none;
			}

		</style>
	</head>
	<body {{ if .SidebarCollapsed }}class="sidebar-collapsed"{{ end }}>

		{{ if .LoggedIn }}

			<nav class="navbar navbar-expand-md bg-light">
				<ul class="navbar-nav">
					<li class="nav-item">
						<a class="nav-link" href="/" target="_blank"><span class="nav-label">Lihat situs</span></a>
					</li>
					<li class="nav-item">
						<a class="nav-link" href="overview"><span class="nav-label">Ringkasan</span></a>
					</li>
					<li class="nav-item">
						<a class="nav-link" href="articles"><span class="nav-label">Artikel</span></a>
					</li>
					<li class="nav-item">
						<a class="nav-link" href="write"><span class="nav-label">Tulis</span></a>
					</li>
					<li class="nav-item">
						<a class="nav-link" href="categories"><span class="nav-label">Kategori</span></a>
					</li>
					<li class="nav-item">
						<a class="nav-link" href="media"><span class="nav-label">Media</span></a>
					</li>

					{{ if .Viewer.Role.CanManageRoles }}
						<li class="nav-item">
							<a class="nav-link" href="users"><span class="nav-label">Anggota</span></a>
						</li>
						<li class="nav-item">
							<a class="nav-link" href="settings"><span class="nav-label">Pengaturan</span></a>
						</li>
					{{ end }}

					<li class="nav-item">
						<a class="nav-link" href="profile">{{ .Viewer.Profile.Name }}</a>
					</li>
					<li class="nav-item">
						<a class="nav-link" href="logout"><span class="nav-label">Keluar</span></a>
					</li>
				</ul>
			</nav>

		{{ end }}

		<div class="container pt-3">
			{{ .RenderNotifications }}
			{{ template "content" . }}
		</div>
	</body>
</html>`))
