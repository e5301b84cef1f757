package site

import (
	"html/template"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wartasekolah/warta/core"
	"gitlab.com/golang-commonmark/markdown"
)

var markdownParser = markdown.New(markdown.HTML(false), markdown.Linkify(true), markdown.Typographer(true), markdown.MaxNesting(10))

var articleTmpl = tmpl(`<article>
	<h1>{{ .Article.Title }}</h1>

	<p class="text-muted">
		{{ .Article.AuthorName }} &middot; {{ .FormatDateTime .Article.TsPublished }}
		{{ if .Article.Category }}&middot; <a href="/berita?category={{ .Article.Category }}">{{ .Article.Category }}</a>{{ end }}
	</p>

	{{ .Rendered }}

	{{ if .Article.Tags }}
		<p class="mt-3"><small class="text-muted">Tag: {{ JoinTags .Article.Tags }}</small></p>
	{{ end }}

	<p><small class="text-muted">{{ .Article.Views }} kali dilihat</small></p>
</article>`)

type articleData struct {
	*context
	Article  *core.Article
	Rendered template.HTML
}

func article(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	a, err := ctx.db.GetArticleBySlug(params.ByName("slug"))
	if err != nil {
		return err
	}

	// unpublished articles are visible to dashboard roles only
	if !a.Published() && !ctx.Viewer.CanAccessDashboard {
		http.NotFound(w, req)
		return nil
	}

	if a.Published() {
		if err := ctx.db.AddView(a.ID); err != nil {
			ctx.db.Log.Warn().Err(err).Int("article", a.ID).Msg("incrementing view counter")
		} else {
			a.Views++
		}
	}

	return articleTmpl.Execute(w, &articleData{
		context:  ctx,
		Article:  a,
		Rendered: template.HTML(markdownParser.RenderToString([]byte(a.Content))),
	})
}
