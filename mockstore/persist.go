package mockstore

import (
	"fmt"
	"os"

	"github.com/wartasekolah/warta/core"
	"gopkg.in/ini.v1"
)

// Only the settings and the sidebar preference are written to disk. The rest
// of the store is deliberately ephemeral, a restart resets the demo data.

func (s *MemoryStore) load() error {

	file, err := ini.Load(s.persistPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", s.persistPath, err)
	}

	var sec = file.Section("settings")
	if sec.HasKey("site_name") {
		s.settings.SiteName = sec.Key("site_name").String()
	}
	if sec.HasKey("tagline") {
		s.settings.Tagline = sec.Key("tagline").String()
	}
	if sec.HasKey("brand_primary") {
		s.settings.BrandPrimary = sec.Key("brand_primary").String()
	}
	if sec.HasKey("review_required") {
		s.settings.ReviewRequired = sec.Key("review_required").MustBool(s.settings.ReviewRequired)
	}
	if sec.HasKey("default_status") {
		if status := core.Status(sec.Key("default_status").String()); status.Valid() {
			s.settings.DefaultStatus = status
		}
	}
	if sec.HasKey("comments_enabled") {
		s.settings.CommentsEnabled = sec.Key("comments_enabled").MustBool(s.settings.CommentsEnabled)
	}
	if sec.HasKey("auto_moderation") {
		s.settings.AutoModeration = sec.Key("auto_moderation").MustBool(s.settings.AutoModeration)
	}

	s.sidebar = file.Section("ui").Key("sidebar_collapsed").MustBool(false)

	return nil
}

// save is called with s.mu held.
func (s *MemoryStore) save() error {

	if s.persistPath == "" {
		return nil
	}

	var file = ini.Empty()

	var sec = file.Section("settings")
	sec.Key("site_name").SetValue(s.settings.SiteName)
	sec.Key("tagline").SetValue(s.settings.Tagline)
	sec.Key("brand_primary").SetValue(s.settings.BrandPrimary)
	sec.Key("review_required").SetValue(fmt.Sprintf("%t", s.settings.ReviewRequired))
	sec.Key("default_status").SetValue(string(s.settings.DefaultStatus))
	sec.Key("comments_enabled").SetValue(fmt.Sprintf("%t", s.settings.CommentsEnabled))
	sec.Key("auto_moderation").SetValue(fmt.Sprintf("%t", s.settings.AutoModeration))

	file.Section("ui").Key("sidebar_collapsed").SetValue(fmt.Sprintf("%t", s.sidebar))

	if err := file.SaveTo(s.persistPath); err != nil {
		return fmt.Errorf("saving %s: %w", s.persistPath, err)
	}
	return nil
}
