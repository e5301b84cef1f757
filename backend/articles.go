package backend

import (
	"fmt"
	"html/template"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/wartasekolah/warta/core"
	"github.com/wartasekolah/warta/util"
)

const ArticlesPerPage = 20

// articleAction is the closed set of per-row and bulk operations on live
// articles. Every case dispatches into a workflow transition, the store is
// never patched directly.
type articleAction string

const (
	actionSubmit  articleAction = "submit"
	actionPublish articleAction = "publish"
	actionArchive articleAction = "archive"
	actionDelete  articleAction = "delete"
)

func parseArticleAction(s string) (articleAction, error) {
	switch a := articleAction(s); a {
	case actionSubmit, actionPublish, actionArchive, actionDelete:
		return a, nil
	default:
		return "", fmt.Errorf("%w: unknown action %q", core.ErrValidation, s)
	}
}

func (a articleAction) apply(ctx *context, id int) error {
	switch a {
	case actionSubmit:
		return ctx.db.SubmitForReview(ctx.Actor(), id)
	case actionPublish:
		return ctx.db.ApproveAndPublish(ctx.Actor(), id)
	case actionArchive:
		return ctx.db.ArchiveArticle(ctx.Actor(), id)
	case actionDelete:
		if !ctx.Viewer.Role.CanManageRoles() {
			return fmt.Errorf("%w: only admins can delete articles", core.ErrForbidden)
		}
		return ctx.db.DeleteArticle(id)
	default:
		return fmt.Errorf("%w: unknown action %q", core.ErrValidation, string(a))
	}
}

var articlesTmpl = tmpl(`<h1>Artikel</h1>

	<form method="post">
		<table class="table table-sm">
			<tr>
				<th></th>
				<th>Judul</th>
				<th>Penulis</th>
				<th>Kategori</th>
				<th>Status</th>
				<th>Dilihat</th>
				<th>Diperbarui</th>
				<th>Aksi</th>
			</tr>
			{{ range .Articles }}
				<tr>
					<td><input type="checkbox" name="selected" value="{{ .ID }}"></td>
					<td><a href="/artikel/{{ .Slug }}" target="_blank">{{ .Title }}</a></td>
					<td>{{ .AuthorName }}</td>
					<td>{{ .Category }}</td>
					<td>{{ StatusBadge .Status }}</td>
					<td>{{ .Views }}</td>
					<td>{{ $.FormatDateTime .TsUpdated }}</td>
					<td>
						<button class="btn btn-sm btn-outline-secondary" name="row" value="submit:{{ .ID }}">Ajukan</button>
						{{ if $.Viewer.Role.CanPublish }}
							<button class="btn btn-sm btn-outline-success" name="row" value="publish:{{ .ID }}">Terbitkan</button>
							<button class="btn btn-sm btn-outline-dark" name="row" value="archive:{{ .ID }}">Arsipkan</button>
						{{ end }}
					</td>
				</tr>
			{{ end }}
		</table>

		{{ if .Viewer.Role.CanPublish }}
			<div class="form-inline">
				<select class="form-control mr-2" name="bulk">
					<option value="">Aksi massal ...</option>
					<option value="publish">Terbitkan</option>
					<option value="archive">Arsipkan</option>
					{{ if .Viewer.Role.CanManageRoles }}
						<option value="delete">Hapus</option>
					{{ end }}
				</select>
				<button type="submit" class="btn btn-primary">Terapkan</button>
			</div>
		{{ end }}
	</form>

	<nav>
		<ul class="pagination justify-content-center">
			{{ range .PageLinks }}
				{{ . }}
			{{ end }}
		</ul>
	</nav>`)

type articlesData struct {
	*context
	Articles []core.Article
	page     int
	pages    int
}

func (data *articlesData) PageLinks() []template.HTML {
	return util.PageLinks(
		data.page,
		data.pages,
		func(page int, name string) string {
			return fmt.Sprintf(`<li class="page-item"><a class="page-link" href="articles?page=%d">%s</a></li>`, page, name)
		},
		func(page int, name string) string {
			return fmt.Sprintf(`<li class="page-item active"><span class="page-link">%d</span></li>`, page)
		},
	)
}

func articles(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	if req.Method == http.MethodPost {

		if row := req.PostFormValue("row"); row != "" {
			if err := applyRowAction(ctx, row); err != nil {
				ctx.Danger(err)
			} else {
				ctx.Success("Artikel diperbarui.")
			}
			ctx.SeeOther("/articles")
			return nil
		}

		if bulk := req.PostFormValue("bulk"); bulk != "" {
			action, err := parseArticleAction(bulk)
			if err != nil {
				return err
			}
			req.ParseForm()
			var n int
			for _, s := range req.PostForm["selected"] {
				id, err := strconv.Atoi(s)
				if err != nil {
					continue
				}
				if err := action.apply(ctx, id); err != nil {
					ctx.Danger(err)
					continue
				}
				n++
			}
			ctx.Success("%d artikel diperbarui.", n)
			ctx.SeeOther("/articles")
			return nil
		}
	}

	var all []core.Article
	var err error
	if ctx.Viewer.Role.CanPublish() {
		all, err = ctx.db.GetAllArticles(1000, 0)
	} else {
		// writers only manage their own articles
		all, err = ctx.db.GetByAuthor(ctx.Actor().ID)
	}
	if err != nil {
		return err
	}

	page, err := strconv.Atoi(req.FormValue("page"))
	if err != nil || page < 1 {
		page = 1
	}
	pages := int(math.Ceil(float64(len(all)) / ArticlesPerPage))
	if pages < 1 {
		pages = 1
	}
	if page > pages {
		page = pages
	}

	from := (page - 1) * ArticlesPerPage
	to := from + ArticlesPerPage
	if to > len(all) {
		to = len(all)
	}

	return articlesTmpl.Execute(w, &articlesData{
		context:  ctx,
		Articles: all[from:to],
		page:     page,
		pages:    pages,
	})
}

// applyRowAction parses "action:id" button values.
func applyRowAction(ctx *context, value string) error {
	actionStr, idStr, ok := strings.Cut(value, ":")
	if !ok {
		return fmt.Errorf("%w: malformed row action %q", core.ErrValidation, value)
	}
	action, err := parseArticleAction(actionStr)
	if err != nil {
		return err
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return fmt.Errorf("%w: malformed article id %q", core.ErrValidation, idStr)
	}
	return action.apply(ctx, id)
}
