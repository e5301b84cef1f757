package site

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

var aboutTmpl = tmpl(`<h1>Tentang Warta Sekolah</h1>

	<p>
		Warta Sekolah adalah media jurnalistik siswa. Kami meliput kegiatan
		sekolah, prestasi, dan cerita warga sekolah, ditulis oleh siswa dan
		disunting oleh redaksi siswa.
	</p>

	<p>
		Semua siswa boleh bergabung. Anggota baru mulai sebagai penulis lepas,
		redaksi menentukan artikel mana yang naik cetak dan tayang di situs ini.
	</p>

	<p><a href="/pedoman">Baca pedoman redaksi kami.</a></p>`)

func about(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {
	return aboutTmpl.Execute(w, ctx)
}

var eventsTmpl = tmpl(`<h1>Agenda</h1>

	<table class="table">
		<tr>
			<th>Kegiatan</th>
			<th>Tanggal</th>
			<th>Tempat</th>
			<th></th>
		</tr>
		{{ range .Events }}
			<tr>
				<td>{{ .Title }}</td>
				<td>{{ .Date }}</td>
				<td>{{ .Location }}</td>
				<td>{{ .Description }}</td>
			</tr>
		{{ end }}
	</table>`)

func events(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {
	return eventsTmpl.Execute(w, ctx)
}

var clubsTmpl = tmpl(`<h1>Ekstrakurikuler</h1>

	<div class="row">
		{{ range .Clubs }}
			<div class="col-md-4">
				<div class="card mb-3">
					<div class="card-body">
						<h2 class="card-title">{{ .Name }}</h2>
						<p class="card-text">{{ .Description }}</p>
						<small class="text-muted">{{ .Members }} anggota &middot; setiap {{ .MeetingDay }}</small>
					</div>
				</div>
			</div>
		{{ end }}
	</div>`)

func clubs(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {
	return clubsTmpl.Execute(w, ctx)
}

var guidelinesTmpl = tmpl(`<h1>Pedoman Redaksi</h1>

	<ol>
		<li>Tulis berdasarkan fakta. Wawancara minimal satu narasumber.</li>
		<li>Gunakan bahasa Indonesia yang baik, hindari singkatan gaul di berita.</li>
		<li>Foto harus karya sendiri atau seizin pemiliknya.</li>
		<li>Draf diajukan ke redaksi, editor meninjau sebelum terbit.</li>
		<li>Kritik boleh tajam, tapi tidak menyerang pribadi.</li>
	</ol>`)

func guidelines(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {
	return guidelinesTmpl.Execute(w, ctx)
}
