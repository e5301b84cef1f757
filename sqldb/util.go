package sqldb

import (
	"database/sql"
	"fmt"
	"strings"
)

func mustPrepare(db *sql.DB, query string) *sql.Stmt {
	stmt, err := db.Prepare(query)
	if err != nil {
		panic(fmt.Sprintf("error preparing %s: %v", query, err))
	}
	return stmt
}

// tags are stored as one comma-separated column
func joinTags(tags []string) string {
	var clean = make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			clean = append(clean, t)
		}
	}
	return strings.Join(clean, ",")
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
