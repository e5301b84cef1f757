package backend

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// The media library is part of the demo dashboard and runs against the
// injected mock store. Real uploads happen on the profile page via the
// filestore.

var mediaTmpl = tmpl(`<h1>Media</h1>

	<table class="table table-sm">
		<tr>
			<th>Berkas</th>
			<th>Alt</th>
			<th>Tipe</th>
			<th>Ukuran</th>
			<th>Dipakai</th>
			<th>Diunggah</th>
			<th></th>
		</tr>
		{{ range .Mock.Media }}
			<tr>
				<td>{{ .Filename }}</td>
				<td>{{ .Alt }}</td>
				<td>{{ .Type }}</td>
				<td>{{ .Width }}&times;{{ .Height }}</td>
				<td>{{ len .UsedIn }} artikel</td>
				<td>{{ .UploadedAt }} oleh {{ .UploadedBy }}</td>
				<td>
					<form method="post">
						<button class="btn btn-sm btn-outline-danger" name="delete" value="{{ .ID }}" {{ if .UsedIn }}disabled title="Masih dipakai artikel"{{ end }}>Hapus</button>
					</form>
				</td>
			</tr>
		{{ end }}
	</table>`)

func media(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	if req.Method == http.MethodPost {

		if del := req.PostFormValue("delete"); del != "" {
			if err := ctx.mock.DeleteMedia(del); err != nil {
				ctx.Danger(err)
			} else {
				ctx.Success("Berkas dihapus.")
			}
		}

		ctx.SeeOther("/media")
		return nil
	}

	return mediaTmpl.Execute(w, ctx)
}
