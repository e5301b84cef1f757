package upload

import (
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
)

type Store interface {
	Folder(ownerID int) Folder
	HMAC(ownerID int, filename string, w int, h int, ts int64) string
	// PublicURL resolves the stable serving path of an uploaded file,
	// relative to the upload mount.
	PublicURL(ownerID int, filename string) string
	// ThumbURL resolves a signed serving path for a downscaled variant.
	ThumbURL(ownerID int, filename string, w, h int) string
	ServeHTTP(w http.ResponseWriter, req *http.Request) // implementations will use HMAC and ParseURL
}

// ParseURL parses an url like "100/foo.jpg" or "100/foo.jpg?w=400&h=200&ts=1&sig=abc".
func ParseURL(u *url.URL) (ownerID int, filename string, resize bool, w, h int, ts int64, sig []byte) {

	dir, filename := path.Split(strings.Trim(u.Path, "/"))

	ownerID, err := strconv.Atoi(strings.Trim(dir, "/"))
	if err != nil || ownerID <= 0 {
		return 0, "", false, 0, 0, 0, nil
	}

	filename = strings.TrimSpace(filename)
	if filename == "" {
		return 0, "", false, 0, 0, 0, nil
	}

	if strings.HasSuffix(filename, ".jpg") || strings.HasSuffix(filename, ".jpeg") {
		w, _ = strconv.Atoi(u.Query().Get("w"))
		h, _ = strconv.Atoi(u.Query().Get("h"))
		resize = w != 0 || h != 0
	}

	ts, _ = strconv.ParseInt(u.Query().Get("ts"), 10, 64)
	sig = []byte(u.Query().Get("sig"))

	return
}
