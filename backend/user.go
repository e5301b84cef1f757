package backend

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/wartasekolah/warta/core"
)

var userTmpl = tmpl(`<h1>Anggota &raquo;{{ .Selected.Name }}&laquo;</h1>

	<p>
		{{ .Selected.Username }} &middot; {{ .Selected.Email }} &middot; bergabung {{ .FormatDate .Selected.TsCreated }}
	</p>

	<h2>Peran</h2>

	<form method="post" class="form-inline">
		<select class="form-control mr-2" name="role">
			{{ range .Roles }}
				<option value="{{ . }}" {{ if eq . $.Selected.Role }}selected{{ end }}>{{ . }}</option>
			{{ end }}
		</select>
		<button type="submit" class="btn btn-primary" name="submit_role" value="1">Simpan peran</button>
	</form>

	<h2 class="mt-4">Atur kata sandi</h2>

	<form method="post">
		<div class="form-group row">
			<label class="col-sm-6 col-form-label">Kata sandi baru</label>
			<div class="col-sm-6">
				<input type="password" class="form-control" name="new1">
			</div>
		</div>
		<div class="form-group row">
			<label class="col-sm-6 col-form-label">Ulangi kata sandi baru</label>
			<div class="col-sm-6">
				<input type="password" class="form-control" name="new2">
			</div>
		</div>
		<button type="submit" class="btn btn-primary" name="submit_password" value="1">Atur kata sandi</button>
	</form>`)

type userData struct {
	*context
	Selected *core.Profile
	Roles    []core.Role
}

func user(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	if !ctx.Viewer.Role.CanManageRoles() {
		return fmt.Errorf("%w: only admins can manage members", core.ErrForbidden)
	}

	selectedID, err := strconv.Atoi(params.ByName("id"))
	if err != nil {
		return err
	}

	selected, err := ctx.db.GetProfile(selectedID)
	if err != nil {
		return err
	}

	if req.Method == http.MethodPost {

		switch {
		case req.PostFormValue("submit_role") != "":

			role, err := core.ParseRole(req.PostFormValue("role"))
			if err != nil {
				return err
			}

			if err := ctx.db.AssignRole(ctx.Actor(), selected.ID, role); err != nil {
				return err
			}

			ctx.Success("Peran %s sekarang %s.", selected.Name, role)

		case req.PostFormValue("submit_password") != "":

			var new1 = req.PostFormValue("new1")
			var new2 = req.PostFormValue("new2")

			if new1 != new2 {
				return fmt.Errorf("%w: passwords don't match", core.ErrValidation)
			}

			if err := ctx.db.SetPassword(selected.ID, new1); err != nil {
				return err
			}

			ctx.Success("Kata sandi %s diperbarui.", selected.Name)
		}

		ctx.SeeOther("/user/%d", selected.ID)
		return nil
	}

	return userTmpl.Execute(w, &userData{
		context:  ctx,
		Selected: selected,
		Roles:    core.AllRoles,
	})
}
