package backend

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/wartasekolah/warta/core"
	"github.com/wartasekolah/warta/mockstore"
)

var settingsTmpl = tmpl(`<h1>Pengaturan</h1>

	<form method="post" style="max-width: 30rem;">
		<div class="form-group">
			<label>Nama situs</label>
			<input type="text" class="form-control" name="site_name" value="{{ .Settings.SiteName }}">
		</div>
		<div class="form-group">
			<label>Tagline</label>
			<input type="text" class="form-control" name="tagline" value="{{ .Settings.Tagline }}">
		</div>
		<div class="form-group">
			<label>Warna utama</label>
			<input type="color" class="form-control" name="brand_primary" value="{{ .Settings.BrandPrimary }}">
		</div>
		<div class="form-group">
			<label>Status baku artikel baru</label>
			<select class="form-control" name="default_status">
				<option value="draft" {{ if .DefaultStatusIs "draft" }}selected{{ end }}>Draf</option>
				<option value="in_review" {{ if .DefaultStatusIs "in_review" }}selected{{ end }}>Menunggu tinjauan</option>
			</select>
		</div>
		<div class="form-check">
			<input type="checkbox" class="form-check-input" name="review_required" id="review_required" {{ if .Settings.ReviewRequired }}checked{{ end }}>
			<label class="form-check-label" for="review_required">Wajib tinjauan editor sebelum terbit</label>
		</div>
		<div class="form-check">
			<input type="checkbox" class="form-check-input" name="comments_enabled" id="comments_enabled" {{ if .Settings.CommentsEnabled }}checked{{ end }}>
			<label class="form-check-label" for="comments_enabled">Komentar aktif</label>
		</div>
		<div class="form-check mb-3">
			<input type="checkbox" class="form-check-input" name="auto_moderation" id="auto_moderation" {{ if .Settings.AutoModeration }}checked{{ end }}>
			<label class="form-check-label" for="auto_moderation">Moderasi otomatis</label>
		</div>
		<button type="submit" class="btn btn-primary">Simpan</button>
	</form>

	<h2 class="mt-4">Tampilan</h2>

	<form method="post">
		<button type="submit" class="btn btn-outline-secondary" name="toggle_sidebar" value="1">
			{{ if .SidebarCollapsed }}Bentangkan{{ else }}Ciutkan{{ end }} bilah sisi
		</button>
	</form>`)

type settingsData struct {
	*context
	Settings mockstore.Settings
}

func (data *settingsData) DefaultStatusIs(s string) bool {
	return data.Settings.DefaultStatus == core.Status(s)
}

func settings(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	if !ctx.Viewer.Role.CanManageRoles() {
		return fmt.Errorf("%w: only admins can change settings", core.ErrForbidden)
	}

	if req.Method == http.MethodPost {

		if req.PostFormValue("toggle_sidebar") != "" {
			if err := ctx.mock.SetSidebarCollapsed(!ctx.mock.SidebarCollapsed()); err != nil {
				return err
			}
			ctx.SeeOther("/settings")
			return nil
		}

		var siteName = req.PostFormValue("site_name")
		var tagline = req.PostFormValue("tagline")
		var brandPrimary = req.PostFormValue("brand_primary")
		var defaultStatus = core.Status(req.PostFormValue("default_status"))
		var reviewRequired = req.PostFormValue("review_required") != ""
		var commentsEnabled = req.PostFormValue("comments_enabled") != ""
		var autoModeration = req.PostFormValue("auto_moderation") != ""

		if !defaultStatus.Valid() {
			return fmt.Errorf("%w: invalid default status", core.ErrValidation)
		}

		err := ctx.mock.UpdateSettings(mockstore.SettingsPatch{
			SiteName:        &siteName,
			Tagline:         &tagline,
			BrandPrimary:    &brandPrimary,
			DefaultStatus:   &defaultStatus,
			ReviewRequired:  &reviewRequired,
			CommentsEnabled: &commentsEnabled,
			AutoModeration:  &autoModeration,
		})
		if err != nil {
			return err
		}

		ctx.Success("Pengaturan disimpan.")
		ctx.SeeOther("/settings")
		return nil
	}

	return settingsTmpl.Execute(w, &settingsData{
		context:  ctx,
		Settings: ctx.mock.Settings(),
	})
}
