package backend

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wartasekolah/warta/core"
)

var ErrLogin = errors.New("username atau kata sandi salah")

var loginTmpl = tmpl(`<h1>Masuk</h1>
	<form method="post" style="max-width: 20rem; margin: auto;">
		<input type="hidden" name="next" value="{{ .Next }}">
		<div class="form-group">
			<label>Username</label>
			<input type="text" class="form-control" name="username" value="{{ .Username }}" required autofocus>
		</div>
		<div class="form-group">
			<label>Kata sandi</label>
			<input type="password" class="form-control" name="password" required>
		</div>
		<div class="form-group">
			<button type="submit" class="btn btn-primary" name="login">Masuk</button>
		</div>
	</form>`)

type loginData struct {
	*context
	Username string
	Next     string
}

func login(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	if ctx.LoggedIn() {
		ctx.SeeOther("/overview")
		return nil
	}

	var username string
	var next = core.SafeNext(req.FormValue("next"))

	if req.Method == http.MethodPost {

		username = req.PostFormValue("username")
		password := req.PostFormValue("password")

		err := ctx.Login(username, password)
		if err == nil {
			if ctx.Viewer.CanAccessDashboard && next == "/" {
				next = "/overview"
			}
			ctx.SeeOther(next)
			return nil
		}
		ctx.Danger(ErrLogin)
		// keep POST data for the username field
	}

	return loginTmpl.Execute(w, &loginData{
		context:  ctx,
		Username: username,
		Next:     next,
	})
}
