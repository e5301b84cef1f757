package site

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wartasekolah/warta/core"
)

var homeTmpl = tmpl(`
	<h1>Sorotan</h1>

	<div class="row">
		{{ range .Featured }}
			<div class="col-md-4">
				<div class="card mb-3">
					<div class="card-body">
						<h2 class="card-title"><a href="/artikel/{{ .Slug }}">{{ .Title }}</a></h2>
						<p class="card-text">{{ Teaser . }}</p>
						<small class="text-muted">{{ .AuthorName }} &middot; {{ $.FormatDate .TsPublished }}</small>
					</div>
				</div>
			</div>
		{{ end }}
	</div>

	<h2>Terbaru</h2>

	<ul class="list-unstyled">
		{{ range .Recent }}
			<li class="mb-2">
				<a href="/artikel/{{ .Slug }}">{{ .Title }}</a>
				<small class="text-muted">{{ $.FormatDate .TsPublished }}</small>
			</li>
		{{ end }}
	</ul>

	<div class="row mt-4">
		<div class="col-md-6">
			<h2>Kategori</h2>
			<ul>
				{{ range .Categories }}
					<li><a href="/berita?category={{ .Slug }}"><span style="color: {{ .Color }}">&#9632;</span> {{ .Name }}</a></li>
				{{ end }}
			</ul>
		</div>
		<div class="col-md-6">
			<h2>Agenda terdekat</h2>
			<ul>
				{{ range .Events }}
					<li>{{ .Title }} <small class="text-muted">{{ .Date }} &middot; {{ .Location }}</small></li>
				{{ end }}
			</ul>
		</div>
	</div>`)

type homeData struct {
	*context
	Listing    core.Listing
	Categories []core.Category
}

// Featured returns the top three articles of the listing.
func (data *homeData) Featured() []core.Article {
	if len(data.Listing.Articles) > 3 {
		return data.Listing.Articles[:3]
	}
	return data.Listing.Articles
}

// Recent returns the next three after the featured block.
func (data *homeData) Recent() []core.Article {
	if len(data.Listing.Articles) <= 3 {
		return nil
	}
	rest := data.Listing.Articles[3:]
	if len(rest) > 3 {
		rest = rest[:3]
	}
	return rest
}

func home(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	var listing = ctx.db.ListPublished(core.FrontPageSize)
	if listing.UseFallback {
		ctx.db.Log.Debug().AnErr("reason", listing.Reason).Msg("serving fallback content")
	}

	cats, err := ctx.db.GetAllCategories()
	if err != nil || len(cats) == 0 {
		cats = ctx.db.FallbackCategories
	}

	return homeTmpl.Execute(w, &homeData{
		context:    ctx,
		Listing:    listing,
		Categories: cats,
	})
}
