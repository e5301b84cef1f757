// Package staticdata bundles the read-only sample content which is served
// when the live backend is empty or unreachable. The schema mirrors the live
// article and category shape minus privileged fields; live and static data
// are never merged.
package staticdata

import (
	"embed"
	"fmt"

	"github.com/wartasekolah/warta/core"
	"github.com/wartasekolah/warta/util"
	"gopkg.in/yaml.v3"
)

//go:embed fallback.yaml
var files embed.FS

type Event struct {
	ID          int    `yaml:"id"`
	Title       string `yaml:"title"`
	Date        string `yaml:"date"` // civil date, YYYY-MM-DD
	Location    string `yaml:"location"`
	Description string `yaml:"description"`
}

type Club struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Members     int    `yaml:"members"`
	MeetingDay  string `yaml:"meeting_day"`
}

type Data struct {
	Articles   []core.Article
	Categories []core.Category
	Events     []Event
	Clubs      []Club
}

// yaml-facing article row; converted so publication dates are anchored to
// the feed timezone
type articleRow struct {
	ID          int      `yaml:"id"`
	Slug        string   `yaml:"slug"`
	Title       string   `yaml:"title"`
	Excerpt     string   `yaml:"excerpt"`
	Content     string   `yaml:"content"`
	Category    string   `yaml:"category"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags"`
	Views       int      `yaml:"views"`
	Comments    int      `yaml:"comments"`
	PublishedAt string   `yaml:"published_at"` // civil date, YYYY-MM-DD
}

type categoryRow struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"description"`
	Color       string `yaml:"color"`
}

type fallbackFile struct {
	Articles   []articleRow  `yaml:"articles"`
	Categories []categoryRow `yaml:"categories"`
	Events     []Event       `yaml:"events"`
	Clubs      []Club        `yaml:"clubs"`
}

// Load parses the bundled dataset. It is called once at startup; a broken
// bundle is a build defect, not a runtime condition.
func Load() (*Data, error) {

	raw, err := files.ReadFile("fallback.yaml")
	if err != nil {
		return nil, err
	}

	var f fallbackFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing fallback.yaml: %v", err)
	}

	var data = &Data{
		Events: f.Events,
		Clubs:  f.Clubs,
	}

	for _, row := range f.Articles {
		ts, err := util.ParseCivilDate(row.PublishedAt, core.FeedLocation)
		if err != nil {
			return nil, fmt.Errorf("article %q: %v", row.Slug, err)
		}
		data.Articles = append(data.Articles, core.Article{
			ID:          row.ID,
			Slug:        row.Slug,
			Title:       row.Title,
			Summary:     row.Excerpt,
			Content:     row.Content,
			Status:      core.StatusPublished,
			Category:    row.Category,
			AuthorName:  row.Author,
			Tags:        row.Tags,
			Views:       row.Views,
			Comments:    row.Comments,
			TsCreated:   ts,
			TsUpdated:   ts,
			TsPublished: ts,
		})
	}

	for _, row := range f.Categories {
		data.Categories = append(data.Categories, core.Category{
			ID:          row.ID,
			Name:        row.Name,
			Slug:        row.Slug,
			Description: row.Description,
			Color:       row.Color,
		})
	}

	return data, nil
}

// MustLoad panics on a broken bundle.
func MustLoad() *Data {
	data, err := Load()
	if err != nil {
		panic(err)
	}
	return data
}
