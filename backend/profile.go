package backend

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/wartasekolah/warta/core"
	"github.com/wartasekolah/warta/upload"
)

var profileTmpl = tmpl(`<h1>Profil saya</h1>

	{{ with .OwnAvatarThumb }}
		<p><img src="{{ . }}" alt="avatar" style="max-width: 8rem; border-radius: 50%;"></p>
	{{ end }}

	<form method="post" style="max-width: 30rem;">
		<div class="form-group">
			<label>Nama</label>
			<input type="text" class="form-control" name="name" value="{{ .Viewer.Profile.Name }}" required>
		</div>
		<div class="form-group">
			<label>Username</label>
			<input type="text" class="form-control" value="{{ .Viewer.Profile.Username }}" disabled>
		</div>
		<button type="submit" class="btn btn-primary" name="submit_name" value="1">Simpan</button>
	</form>

	<h2 class="mt-4">Foto profil</h2>

	<form method="post" enctype="multipart/form-data" class="form-inline">
		<input type="file" class="form-control-file mr-2" name="avatar" accept="image/jpeg,image/png" required>
		<button type="submit" class="btn btn-primary" name="submit_avatar" value="1">Unggah</button>
	</form>

	<h2 class="mt-4">Ganti kata sandi</h2>

	<form method="post" style="max-width: 30rem;">
		<div class="form-group">
			<label>Kata sandi baru</label>
			<input type="password" class="form-control" name="new1">
		</div>
		<div class="form-group">
			<label>Ulangi kata sandi baru</label>
			<input type="password" class="form-control" name="new2">
		</div>
		<button type="submit" class="btn btn-primary" name="submit_password" value="1">Ganti</button>
	</form>`)

func profile(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	var actor = ctx.Actor()

	if req.Method == http.MethodPost {

		switch {
		case req.PostFormValue("submit_name") != "":

			if err := ctx.db.UpdateOwnProfile(actor, strings.TrimSpace(req.PostFormValue("name"))); err != nil {
				return err
			}
			ctx.Success("Profil disimpan.")

		case req.PostFormValue("submit_avatar") != "":

			file, header, err := req.FormFile("avatar")
			if err != nil {
				return err
			}
			defer file.Close()

			filename, err := upload.CleanFilename(header.Filename)
			if err != nil {
				return fmt.Errorf("%w: %v", core.ErrValidation, err)
			}

			folder := ctx.db.Uploads.Folder(actor.ID)
			if has, err := folder.HasFile(filename); err == nil && has {
				_ = folder.Delete(filename)
			}
			if err := folder.Upload(filename, file); err != nil {
				return err
			}
			if err := ctx.db.ProfileDB.SetAvatar(actor.ID, filename); err != nil {
				return err
			}
			ctx.Success("Foto profil diperbarui.")

		case req.PostFormValue("submit_password") != "":

			var new1 = req.PostFormValue("new1")
			var new2 = req.PostFormValue("new2")

			if new1 != new2 {
				return fmt.Errorf("%w: passwords don't match", core.ErrValidation)
			}

			if err := ctx.db.SetPassword(actor.ID, new1); err != nil {
				return err
			}
			ctx.Success("Kata sandi diganti.")
		}

		ctx.SeeOther("/profile")
		return nil
	}

	return profileTmpl.Execute(w, ctx)
}
