package upload

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// A Folder holds the files of one owner (a profile's avatars or an
// article's media).
type Folder interface {
	Delete(filename string) error
	Files() ([]os.FileInfo, error)
	HasFile(filename string) (bool, error)
	OwnerID() int
	Upload(filename string, src io.Reader) error
}

func CleanFilename(filename string) (string, error) {
	filename = filepath.Base(filename)
	filename = strings.TrimSpace(filename)
	if strings.Contains(filename, "/") || strings.Contains(filename, `\`) {
		return "", errors.New("filename contains a slash")
	}
	if filename == "" {
		return "", errors.New("filename is empty")
	}
	return filename, nil
}

// HMAC signs a resize request. Store implementations use it to prevent DoS
// attacks on image resizing.
func HMAC(secret []byte, ownerID int, filename string, w int, h int, ts int64) string {

	buf := make([]byte, 32)
	binary.PutVarint(buf[0:], int64(ownerID))
	binary.PutVarint(buf[8:], ts)
	binary.PutVarint(buf[16:], int64(w))
	binary.PutVarint(buf[24:], int64(h))
	buf = append(buf, []byte(filename)...)

	hash := hmac.New(sha256.New, secret)
	hash.Write(buf)
	return base64.URLEncoding.EncodeToString(hash.Sum(nil))
}
