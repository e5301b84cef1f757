package site

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wartasekolah/warta/core"
)

var searchTmpl = tmpl(`<h1>Cari</h1>

	<form method="get" class="mb-3">
		<div class="form-group">
			<input type="text" class="form-control" name="q" placeholder="Kata kunci ..." value="{{ .Filter.Search }}" autofocus>
		</div>

		{{ if .AllTags }}
			<div class="form-group">
				{{ range .AllTags }}
					<div class="form-check form-check-inline">
						<input type="checkbox" class="form-check-input" name="tag" value="{{ . }}" id="tag-{{ . }}" {{ if $.TagChecked . }}checked{{ end }}>
						<label class="form-check-label" for="tag-{{ . }}">{{ . }}</label>
					</div>
				{{ end }}
			</div>
		{{ end }}

		<button type="submit" class="btn btn-primary">Cari</button>
	</form>

	{{ if .Searched }}
		{{ if not .Results }}
			<p class="text-muted">Tidak ditemukan.</p>
		{{ end }}
		{{ range .Results }}
			<div class="mb-3">
				<a href="/artikel/{{ .Slug }}">{{ .Title }}</a>
				<p class="mb-0">{{ .Summary }}</p>
				<small class="text-muted">{{ $.FormatDate .TsPublished }}</small>
			</div>
		{{ end }}
	{{ end }}`)

type searchData struct {
	*context
	Filter  core.FeedFilter
	AllTags []string
	Results []core.Article
}

func (data *searchData) Searched() bool {
	return !data.Filter.Empty()
}

func (data *searchData) TagChecked(tag string) bool {
	for _, t := range data.Filter.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func search(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	req.ParseForm()

	var filter = core.FeedFilter{
		Search: req.FormValue("q"),
		Tags:   req.Form["tag"],
	}

	var listing = ctx.db.ListPublished(core.FrontPageSize)

	var results []core.Article
	if !filter.Empty() {
		results = core.SortArticles(core.FilterArticles(listing.Articles, filter), core.SortNewest)
	}

	return searchTmpl.Execute(w, &searchData{
		context: ctx,
		Filter:  filter,
		AllTags: core.AllTags(listing.Articles),
		Results: results,
	})
}
