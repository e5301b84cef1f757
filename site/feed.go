package site

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wartasekolah/warta/core"
)

var feedTmpl = tmpl(`<h1>Berita</h1>

	<form method="get" class="form-inline mb-3">
		<input type="text" class="form-control mr-2" name="q" placeholder="Cari ..." value="{{ .Filter.Search }}">
		<select class="form-control mr-2" name="category">
			<option value="">Semua kategori</option>
			{{ range .Categories }}
				<option value="{{ .Slug }}" {{ if eq .Slug $.Filter.Category }}selected{{ end }}>{{ .Name }}</option>
			{{ end }}
		</select>
		<select class="form-control mr-2" name="sort">
			<option value="newest" {{ if .SortIs "newest" }}selected{{ end }}>Terbaru</option>
			<option value="oldest" {{ if .SortIs "oldest" }}selected{{ end }}>Terlama</option>
			<option value="title" {{ if .SortIs "title" }}selected{{ end }}>Judul</option>
		</select>
		<button type="submit" class="btn btn-primary">Saring</button>
	</form>

	{{ if not .Articles }}
		<p class="text-muted">Tidak ada artikel yang cocok.</p>
	{{ end }}

	{{ range .Articles }}
		<div class="card mb-3">
			<div class="card-body">
				<h2 class="card-title"><a href="/artikel/{{ .Slug }}">{{ .Title }}</a></h2>
				<p class="card-text">{{ Teaser . }}</p>
				<small class="text-muted">
					{{ .AuthorName }} &middot; {{ $.FormatDate .TsPublished }}
					{{ if .Tags }}&middot; {{ JoinTags .Tags }}{{ end }}
				</small>
			</div>
		</div>
	{{ end }}`)

type feedData struct {
	*context
	Articles   []core.Article
	Categories []core.Category
	Filter     core.FeedFilter
	Sort       core.SortOrder
}

func (data *feedData) SortIs(s string) bool {
	return data.Sort == core.SortOrder(s)
}

func feed(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	var filter = core.FeedFilter{
		Search:   req.FormValue("q"),
		Category: req.FormValue("category"),
	}
	var sort = core.ParseSortOrder(req.FormValue("sort"))

	var listing = ctx.db.ListPublished(core.FrontPageSize)
	var articles = core.SortArticles(core.FilterArticles(listing.Articles, filter), sort)

	cats, err := ctx.db.GetAllCategories()
	if err != nil || len(cats) == 0 {
		cats = ctx.db.FallbackCategories
	}

	return feedTmpl.Execute(w, &feedData{
		context:    ctx,
		Articles:   articles,
		Categories: cats,
		Filter:     filter,
		Sort:       sort,
	})
}
