package backend

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wartasekolah/warta/core"
)

func root(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {
	if ctx.LoggedIn() && ctx.Viewer.CanAccessDashboard {
		ctx.SeeOther("/overview")
	} else {
		ctx.SeeOther("/login")
	}
	return nil
}

var overviewTmpl = tmpl(`<h1>Ringkasan</h1>

	<div class="row">
		{{ range .Cards }}
			<div class="col-sm-3">
				<div class="card mb-3">
					<div class="card-body">
						<h2 class="card-title">{{ .Count }}</h2>
						<p class="card-text">{{ .Label }}</p>
					</div>
				</div>
			</div>
		{{ end }}
	</div>

	<h2>Artikel terbaru</h2>

	<table class="table table-sm">
		<tr>
			<th>Judul</th>
			<th>Penulis</th>
			<th>Status</th>
			<th>Diperbarui</th>
		</tr>
		{{ range .Recent }}
			<tr>
				<td>{{ .Title }}</td>
				<td>{{ .AuthorName }}</td>
				<td>{{ StatusBadge .Status }}</td>
				<td>{{ $.FormatDateTime .TsUpdated }}</td>
			</tr>
		{{ end }}
	</table>`)

type overviewCard struct {
	Label string
	Count int
}

type overviewData struct {
	*context
	Cards  []overviewCard
	Recent []core.Article
}

func overview(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	counts, err := ctx.db.DashboardCounts()
	if err != nil {
		return err
	}

	recent, err := ctx.db.GetAllArticles(10, 0)
	if err != nil {
		return err
	}

	var cards []overviewCard
	for _, status := range []core.Status{core.StatusDraft, core.StatusInReview, core.StatusPublished, core.StatusArchived} {
		cards = append(cards, overviewCard{
			Label: status.Label(),
			Count: counts[status],
		})
	}

	return overviewTmpl.Execute(w, &overviewData{
		context: ctx,
		Cards:   cards,
		Recent:  recent,
	})
}
