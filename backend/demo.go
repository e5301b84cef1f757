package backend

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wartasekolah/warta/mockstore"
)

// The demo page shows the full dashboard tables over the mock store, for
// trying out actions without touching live content. Everything except the
// settings resets on restart.

var demoTmpl = tmpl(`<h1>Demo</h1>

	<p class="text-muted">Data contoh. Perubahan di sini tidak menyentuh artikel sungguhan dan hilang saat server dimulai ulang.</p>

	<h2>Artikel</h2>

	<form method="post">
		<table class="table table-sm">
			<tr>
				<th></th>
				<th>Judul</th>
				<th>Penulis</th>
				<th>Kategori</th>
				<th>Status</th>
				<th>Dilihat</th>
				<th>Aksi</th>
			</tr>
			{{ range .Mock.Articles }}
				<tr>
					<td><input type="checkbox" name="selected" value="{{ .ID }}"></td>
					<td>{{ .Title }}</td>
					<td>{{ .Author }}</td>
					<td>{{ .Category }}</td>
					<td>{{ StatusBadge .Status }}</td>
					<td>{{ .Views }}</td>
					<td>
						<button class="btn btn-sm btn-outline-success" name="row_publish" value="{{ .ID }}">Terbitkan</button>
						<button class="btn btn-sm btn-outline-secondary" name="row_unpublish" value="{{ .ID }}">Tarik</button>
						<button class="btn btn-sm btn-outline-dark" name="row_archive" value="{{ .ID }}">Arsipkan</button>
						<button class="btn btn-sm btn-outline-danger" name="row_delete" value="{{ .ID }}">Hapus</button>
					</td>
				</tr>
			{{ end }}
		</table>

		<div class="form-inline mb-4">
			<select class="form-control mr-2" name="bulk">
				<option value="">Aksi massal ...</option>
				<option value="publish">Terbitkan</option>
				<option value="archive">Arsipkan</option>
				<option value="delete">Hapus</option>
			</select>
			<button type="submit" class="btn btn-primary">Terapkan</button>
		</div>
	</form>

	<h2>Anggota</h2>

	<table class="table table-sm">
		<tr>
			<th>Nama</th>
			<th>Email</th>
			<th>Peran</th>
			<th>Artikel</th>
			<th>Aktif</th>
		</tr>
		{{ range .Mock.Users }}
			<tr>
				<td>{{ .Name }}</td>
				<td>{{ .Email }}</td>
				<td>{{ .Role }}</td>
				<td>{{ .Articles }}</td>
				<td>{{ if .Active }}ya{{ else }}tidak{{ end }}</td>
			</tr>
		{{ end }}
	</table>`)

func demo(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	if req.Method == http.MethodPost {

		for _, rowName := range []string{"row_publish", "row_unpublish", "row_archive", "row_delete"} {
			if id := req.PostFormValue(rowName); id != "" {
				action, err := mockstore.ParseRowAction(rowName[len("row_"):])
				if err != nil {
					return err
				}
				if err := action.Apply(ctx.mock, id); err != nil {
					ctx.Danger(err)
				} else {
					ctx.Success("Artikel contoh diperbarui.")
				}
				ctx.SeeOther("/demo")
				return nil
			}
		}

		if bulk := req.PostFormValue("bulk"); bulk != "" {
			action, err := mockstore.ParseBulkAction(bulk)
			if err != nil {
				return err
			}
			req.ParseForm()
			n, err := action.Apply(ctx.mock, req.PostForm["selected"])
			if err != nil {
				return err
			}
			ctx.Success("%d artikel contoh diperbarui.", n)
		}

		ctx.SeeOther("/demo")
		return nil
	}

	return demoTmpl.Execute(w, ctx)
}
