package core

// FrontPageSize limits the home and feed listing queries.
const FrontPageSize = 12

// Listing is the result of a published-content query. UseFallback is
// explicit so the decision to show bundled sample data stays auditable;
// Reason carries the query error when the fallback was caused by one, and is
// nil when the backend simply had no published articles yet.
type Listing struct {
	Articles    []Article
	UseFallback bool
	Reason      error
}

// ListPublished fetches the most recently published articles. On error or
// empty result it substitutes the bundled fallback dataset, so pages never
// render empty during initial setup or a backend outage. No merge between
// live and static data is attempted.
func (c *CoreDB) ListPublished(limit int) Listing {

	if limit <= 0 || limit > FrontPageSize {
		limit = FrontPageSize
	}

	articles, err := c.ArticleDB.GetPublished(limit, 0)
	if err != nil {
		c.Log.Warn().Err(err).Msg("published listing failed, serving fallback data")
		return Listing{Articles: c.fallback(limit), UseFallback: true, Reason: err}
	}
	if len(articles) == 0 {
		return Listing{Articles: c.fallback(limit), UseFallback: true}
	}
	return Listing{Articles: articles}
}

func (c *CoreDB) fallback(limit int) []Article {
	if len(c.FallbackArticles) <= limit {
		return c.FallbackArticles
	}
	return c.FallbackArticles[:limit]
}
