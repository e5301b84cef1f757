package core

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// The feed shows civil dates in the school's timezone. Publication
// timestamps are normalized to that zone before comparing, so articles never
// shift by a day through naive parsing.
var FeedLocation = mustLoadLocation("Asia/Jakarta")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// title sorting uses locale-aware, case-insensitive collation; a Collator
// mutates internal state while comparing, so each sort gets its own
func newTitleCollator() *collate.Collator {
	return collate.New(language.Indonesian, collate.Loose, collate.Numeric)
}

type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
	SortTitle  SortOrder = "title"
)

func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortOldest:
		return SortOldest
	case SortTitle:
		return SortTitle
	default:
		return SortNewest
	}
}

// FeedFilter is the conjunction of a substring search, an optional category
// and an optional tag selection.
type FeedFilter struct {
	Search   string
	Category string   // category slug, empty for all
	Tags     []string // article matches if it carries at least one
}

func (f FeedFilter) Empty() bool {
	return strings.TrimSpace(f.Search) == "" && f.Category == "" && len(f.Tags) == 0
}

// FilterArticles is a pure function. An empty filter returns the input
// unchanged, same order, same backing array.
func FilterArticles(articles []Article, f FeedFilter) []Article {

	if f.Empty() {
		return articles
	}

	var term = strings.ToLower(strings.TrimSpace(f.Search))

	var result = make([]Article, 0, len(articles))
	for _, a := range articles {
		if term != "" && !matchesTerm(&a, term) {
			continue
		}
		if f.Category != "" && !strings.EqualFold(a.Category, f.Category) {
			continue
		}
		if len(f.Tags) > 0 && !intersects(a.Tags, f.Tags) {
			continue
		}
		result = append(result, a)
	}
	return result
}

func matchesTerm(a *Article, term string) bool {
	if strings.Contains(strings.ToLower(a.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Summary), term) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func intersects(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(h, w) {
				return true
			}
		}
	}
	return false
}

// civilDate collapses a publication timestamp to its calendar day in the
// feed timezone, encoded so two articles published on the same day compare
// equal and keep their original relative order.
func civilDate(ts int64) int {
	if ts == 0 {
		return 0
	}
	y, m, d := time.Unix(ts, 0).In(FeedLocation).Date()
	return y*10000 + int(m)*100 + d
}

// SortArticles returns a sorted copy. The sort is stable, so articles with
// equal keys keep their original relative order.
func SortArticles(articles []Article, order SortOrder) []Article {

	var sorted = make([]Article, len(articles))
	copy(sorted, articles)

	switch order {
	case SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return civilDate(sorted[i].TsPublished) < civilDate(sorted[j].TsPublished)
		})
	case SortTitle:
		var collator = newTitleCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return collator.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	default: // newest
		sort.SliceStable(sorted, func(i, j int) bool {
			return civilDate(sorted[i].TsPublished) > civilDate(sorted[j].TsPublished)
		})
	}
	return sorted
}

// AllTags collects the distinct tags of a collection, collated.
func AllTags(articles []Article) []string {
	var seen = make(map[string]struct{})
	var tags []string
	for _, a := range articles {
		for _, t := range a.Tags {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				tags = append(tags, t)
			}
		}
	}
	var collator = newTitleCollator()
	sort.SliceStable(tags, func(i, j int) bool {
		return collator.CompareString(tags[i], tags[j]) < 0
	})
	return tags
}
