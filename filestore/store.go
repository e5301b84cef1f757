// Package filestore keeps uploaded avatars and article media on the local
// filesystem and serves them over HTTP, with HMAC-protected JPEG downscaling
// for thumbnails.
package filestore

import (
	"crypto/hmac"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"net/http"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"
	"github.com/wartasekolah/warta/upload"
)

// implements upload.Store
type Store struct {
	CacheDir   string // resized variants, flat
	UploadDir  string // one subfolder per owner id
	HMACSecret []byte
	Resizer    JPEGResizer
	Log        zerolog.Logger
}

func (s *Store) Folder(ownerID int) upload.Folder {
	return &Folder{
		store:   s,
		ownerID: ownerID,
	}
}

func (s *Store) HMAC(ownerID int, filename string, w int, h int, ts int64) string {
	return upload.HMAC(s.HMACSecret, ownerID, filename, w, h, ts)
}

func (s *Store) PublicURL(ownerID int, filename string) string {
	return fmt.Sprintf("/upload/%d/%s", ownerID, filename)
}

// ThumbURL returns a signed URL for a resized variant.
func (s *Store) ThumbURL(ownerID int, filename string, w, h int) string {
	var ts = time.Now().Unix()
	return fmt.Sprintf("/upload/%d/%s?w=%d&h=%d&ts=%d&sig=%s",
		ownerID, filename, w, h, ts, s.HMAC(ownerID, filename, w, h, ts))
}

func (s *Store) ServeHTTP(writer http.ResponseWriter, req *http.Request) {

	ownerID, filename, resize, w, h, ts, sig := upload.ParseURL(req.URL)
	if ownerID == 0 {
		http.NotFound(writer, req)
		return
	}

	var folder = s.Folder(ownerID).(*Folder)
	var original = folder.fsPath(filename)

	if !resize || s.Resizer == nil {
		http.ServeFile(writer, req, original)
		return
	}

	// HMAC to avoid DoS attacks, deny access if the timestamp is older than one day

	if !hmac.Equal([]byte(s.HMAC(ownerID, filename, w, h, ts)), sig) {
		http.NotFound(writer, req)
		return
	}
	if ts+86400 < time.Now().Unix() {
		http.NotFound(writer, req)
		return
	}

	requested := folder.cachePattern(w, h, filename)

	if _, err := os.Stat(requested); os.IsNotExist(err) {

		originalFile, err := os.Open(original)
		if err != nil {
			http.NotFound(writer, req)
			return
		}
		originalImage, _, err := image.DecodeConfig(originalFile)
		originalFile.Close()
		if err != nil {
			http.NotFound(writer, req)
			return
		}

		// w and h are maxima, no distortion

		var ratio float32 = 1.0
		if w != 0 {
			ratio = float32(w) / float32(originalImage.Width)
		}
		if h != 0 {
			if ratioH := float32(h) / float32(originalImage.Height); ratio > ratioH {
				ratio = ratioH
			}
		}

		if ratio >= 1.0 {

			// don't scale up, symlink to the original instead

			if err := os.Symlink(original, requested); err != nil {
				http.NotFound(writer, req)
				return
			}

		} else {

			w = int(float32(originalImage.Width) * ratio)
			h = int(float32(originalImage.Height) * ratio)

			var canonical = folder.cachePattern(w, h, filename) // with real width and height

			if _, err := os.Stat(canonical); os.IsNotExist(err) {
				if err := s.Resizer.Resize(original, canonical, w, h); err != nil {
					s.Log.Error().Err(err).Str("file", original).Msg("resize failed")
				}
			}

			if canonical != requested {
				if err := os.Symlink(canonical, requested); err != nil {
					http.NotFound(writer, req)
					return
				}
			}
		}
	}

	http.ServeFile(writer, req, requested)
}

// A JPEGResizer downscales a JPEG file.
type JPEGResizer interface {
	Name() string
	Resize(src, dst string, w, h int) error
}

type execResizer struct {
	name string
	args func(src, dst string, w, h int) []string
}

func (r *execResizer) Name() string {
	return r.name
}

func (r *execResizer) Resize(src, dst string, w, h int) error {
	return exec.Command(r.name, r.args(src, dst, w, h)...).Run()
}

// FindResizer locates an installed image conversion tool.
func FindResizer() (JPEGResizer, error) {

	var candidates = []*execResizer{
		{
			name: "gm",
			args: func(src, dst string, w, h int) []string {
				return []string{"convert", src, "-resize", fmt.Sprintf("%dx%d", w, h), dst}
			},
		},
		{
			name: "convert", // imagemagick
			args: func(src, dst string, w, h int) []string {
				return []string{src, "-resize", fmt.Sprintf("%dx%d", w, h), dst}
			},
		},
	}

	for _, c := range candidates {
		if _, err := exec.LookPath(c.name); err == nil {
			return c, nil
		}
	}

	return nil, errors.New("no JPEG resizer found, install graphicsmagick or imagemagick")
}
