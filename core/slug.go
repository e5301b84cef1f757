package core

import (
	"fmt"
	"regexp"
	"strings"
)

var slugRegex = regexp.MustCompile(`[^a-z0-9]+`)

// maximum number of "-1", "-2", ... collision suffixes tried by UniqueSlug
const maxSlugAttempts = 20

// NormalizeSlug lowercases, replaces runs of non-alphanumeric characters
// with a single hyphen and trims leading and trailing hyphens.
func NormalizeSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = slugRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// UniqueSlug normalizes the title and, on collision, appends "-1", "-2" and
// so on, up to a bounded number of attempts.
func (c *CoreDB) UniqueSlug(title string) (string, error) {

	var base = NormalizeSlug(title)
	if base == "" {
		return "", validationf("title %q yields an empty slug", title)
	}

	var slug = base
	for i := 1; ; i++ {
		exists, err := c.ArticleDB.SlugExists(slug)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		if !exists {
			return slug, nil
		}
		if i > maxSlugAttempts {
			return "", validationf("no free slug for %q after %d attempts", base, maxSlugAttempts)
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
