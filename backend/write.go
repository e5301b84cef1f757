package backend

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/wartasekolah/warta/core"
)

var writeTmpl = tmpl(`<h1>Tulis artikel</h1>

	<form method="post">
		<div class="form-group">
			<label>Judul</label>
			<input type="text" class="form-control" name="title" value="{{ .Title }}" required autofocus>
		</div>
		<div class="form-group">
			<label>Ringkasan</label>
			<input type="text" class="form-control" name="summary" value="{{ .Summary }}">
		</div>
		<div class="form-group">
			<label>Kategori</label>
			<select class="form-control" name="category">
				<option value="">(tanpa kategori)</option>
				{{ range .Categories }}
					<option value="{{ .Slug }}" {{ if eq .Slug $.Category }}selected{{ end }}>{{ .Name }}</option>
				{{ end }}
			</select>
		</div>
		<div class="form-group">
			<label>Tag (dipisah koma)</label>
			<input type="text" class="form-control" name="tags" value="{{ .TagsJoined }}">
		</div>
		<div class="form-group">
			<label>Isi (Markdown)</label>
			<textarea class="form-control" name="content" rows="16">{{ .Content }}</textarea>
		</div>
		<button type="submit" class="btn btn-primary">Simpan draf</button>
	</form>`)

type writeData struct {
	*context
	core.DraftInput
	Categories []core.Category
}

func (data *writeData) TagsJoined() string {
	return strings.Join(data.Tags, ", ")
}

func write(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	var in core.DraftInput

	if req.Method == http.MethodPost {

		in = core.DraftInput{
			Title:    req.PostFormValue("title"),
			Summary:  req.PostFormValue("summary"),
			Content:  req.PostFormValue("content"),
			Category: req.PostFormValue("category"),
			Tags:     splitTags(req.PostFormValue("tags")),
		}

		article, err := ctx.db.CreateDraft(ctx.Actor(), in)
		if err == nil {
			ctx.Success("Draf %q disimpan.", article.Title)
			ctx.SeeOther("/articles")
			return nil
		}
		ctx.Danger(err)
		// keep POST data in the form
	}

	cats, err := ctx.db.GetAllCategories()
	if err != nil {
		return err
	}

	return writeTmpl.Execute(w, &writeData{
		context:    ctx,
		DraftInput: in,
		Categories: cats,
	})
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
