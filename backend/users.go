package backend

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/wartasekolah/warta/core"
)

var usersTmpl = tmpl(`<h1>Anggota</h1>

	<table class="table table-sm">
		<tr>
			<th></th>
			<th>Nama</th>
			<th>Username</th>
			<th>Email</th>
			<th>Peran</th>
			<th>Bergabung</th>
		</tr>
		{{ range .Profiles }}
			<tr>
				<td>{{ with $.AvatarThumb . 32 }}<img src="{{ . }}" alt="" style="width: 2rem; border-radius: 50%;">{{ end }}</td>
				<td><a href="user/{{ .ID }}">{{ .Name }}</a></td>
				<td>{{ .Username }}</td>
				<td>{{ .Email }}</td>
				<td>{{ .Role }}</td>
				<td>{{ $.FormatDate .TsCreated }}</td>
			</tr>
		{{ end }}
	</table>

	<h2>Tambah anggota</h2>

	<form method="post" class="form-inline">
		<input type="text" class="form-control mr-2" name="name" placeholder="Nama" required>
		<input type="text" class="form-control mr-2" name="username" placeholder="Username" required oninput="this.value = this.value.toLowerCase()">
		<input type="email" class="form-control mr-2" name="email" placeholder="Email" required>
		<button type="submit" class="btn btn-primary">Tambah</button>
	</form>`)

type usersData struct {
	*context
	Profiles []core.Profile
}

func users(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	if !ctx.Viewer.Role.CanManageRoles() {
		return fmt.Errorf("%w: only admins can manage members", core.ErrForbidden)
	}

	if req.Method == http.MethodPost {

		var name = strings.TrimSpace(req.PostFormValue("name"))
		var username = req.PostFormValue("username")
		var email = strings.TrimSpace(req.PostFormValue("email"))

		p, err := ctx.db.CreateProfile(name, username, email)
		if err != nil {
			return err
		}

		ctx.Success("Anggota %s dibuat. Atur kata sandinya sekarang.", p.Name)
		ctx.SeeOther("/user/%d", p.ID)
		return nil
	}

	profiles, err := ctx.db.GetAllProfiles(1000, 0)
	if err != nil {
		return err
	}

	return usersTmpl.Execute(w, &usersData{
		context:  ctx,
		Profiles: profiles,
	})
}
