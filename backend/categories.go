package backend

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/wartasekolah/warta/core"
)

var categoriesTmpl = tmpl(`<h1>Kategori</h1>

	<table class="table table-sm">
		<tr>
			<th>Nama</th>
			<th>Slug</th>
			<th>Deskripsi</th>
			<th>Warna</th>
			<th>Artikel</th>
			<th></th>
		</tr>
		{{ range .Categories }}
			<tr>
				<td>{{ .Name }}</td>
				<td>{{ .Slug }}</td>
				<td>{{ .Description }}</td>
				<td><span style="color: {{ .Color }}">&#9632;</span> {{ .Color }}</td>
				<td>{{ .ArticleCount }}</td>
				<td>
					<form method="post">
						<button class="btn btn-sm btn-outline-danger" name="delete" value="{{ .ID }}" {{ if gt .ArticleCount 0 }}disabled title="Masih ada artikel dalam kategori ini"{{ end }}>Hapus</button>
					</form>
				</td>
			</tr>
		{{ end }}
	</table>

	<h2>Tambah kategori</h2>

	<form method="post" class="form-inline">
		<input type="text" class="form-control mr-2" name="name" placeholder="Nama" required>
		<input type="text" class="form-control mr-2" name="description" placeholder="Deskripsi">
		<input type="color" class="form-control mr-2" name="color" value="#3B82F6">
		<button type="submit" class="btn btn-primary" name="create" value="1">Tambah</button>
	</form>`)

type categoriesData struct {
	*context
	Categories []core.Category
}

func categories(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	if req.Method == http.MethodPost {

		if del := req.PostFormValue("delete"); del != "" {

			id, err := strconv.Atoi(del)
			if err != nil {
				return err
			}

			if err := ctx.db.DeleteCategory(ctx.Actor(), id); err != nil {
				ctx.Danger(err)
			} else {
				ctx.Success("Kategori dihapus.")
			}

		} else if req.PostFormValue("create") != "" {

			err := ctx.db.CreateCategory(ctx.Actor(), req.PostFormValue("name"), req.PostFormValue("description"), req.PostFormValue("color"))
			if err != nil {
				ctx.Danger(err)
			} else {
				ctx.Success("Kategori dibuat.")
			}
		}

		ctx.SeeOther("/categories")
		return nil
	}

	cats, err := ctx.db.GetAllCategories()
	if err != nil {
		return err
	}

	return categoriesTmpl.Execute(w, &categoriesData{
		context:    ctx,
		Categories: cats,
	})
}
