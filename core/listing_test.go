package core

import (
	"errors"
	"testing"
)

func sampleFallback() []Article {
	var articles []Article
	for i := 1; i <= 15; i++ {
		articles = append(articles, Article{ID: i, Status: StatusPublished, TsPublished: int64(i)})
	}
	return articles
}

func TestListPublishedLive(t *testing.T) {

	db, articles, _ := newTestDB(t)
	db.FallbackArticles = sampleFallback()

	articles.InsertArticle(&Article{Slug: "live", Status: StatusPublished, TsPublished: 100})

	listing := db.ListPublished(FrontPageSize)
	if listing.UseFallback {
		t.Fatal("live data must not trigger the fallback")
	}
	if len(listing.Articles) != 1 || listing.Articles[0].Slug != "live" {
		t.Fatalf("got %v", listing.Articles)
	}
}

func TestListPublishedEmptyFallsBack(t *testing.T) {

	db, _, _ := newTestDB(t)
	db.FallbackArticles = sampleFallback()

	listing := db.ListPublished(FrontPageSize)
	if !listing.UseFallback {
		t.Fatal("expected fallback")
	}
	if listing.Reason != nil {
		t.Fatalf("empty result is not an error, got reason %v", listing.Reason)
	}
	if len(listing.Articles) != FrontPageSize {
		t.Fatalf("fallback must respect the limit, got %d", len(listing.Articles))
	}
}

func TestListPublishedErrorFallsBack(t *testing.T) {

	db, articles, _ := newTestDB(t)
	db.FallbackArticles = sampleFallback()

	var cause = errors.New("connection refused")
	articles.err = cause

	listing := db.ListPublished(FrontPageSize)
	if !listing.UseFallback {
		t.Fatal("expected fallback")
	}
	if !errors.Is(listing.Reason, cause) {
		t.Fatalf("reason: got %v", listing.Reason)
	}
}

func TestListPublishedNeverMerges(t *testing.T) {

	db, articles, _ := newTestDB(t)
	db.FallbackArticles = sampleFallback()

	articles.InsertArticle(&Article{Slug: "only-live", Status: StatusPublished, TsPublished: 100})

	listing := db.ListPublished(FrontPageSize)
	for _, a := range listing.Articles {
		if a.Slug != "only-live" {
			t.Fatalf("fallback article leaked into live listing: %v", a)
		}
	}
}

func TestListPublishedClampsLimit(t *testing.T) {

	db, _, _ := newTestDB(t)
	db.FallbackArticles = sampleFallback()

	listing := db.ListPublished(1000)
	if len(listing.Articles) != FrontPageSize {
		t.Fatalf("got %d", len(listing.Articles))
	}
}
