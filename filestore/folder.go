package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/wartasekolah/warta/upload"
)

// implements upload.Folder
type Folder struct {
	store   *Store
	ownerID int
}

func (f *Folder) cachePattern(w, h int, filename string) string {
	return fmt.Sprintf("%s/%d_%d_%d_%s", f.store.CacheDir, f.ownerID, w, h, filename)
}

func (f *Folder) cachePatternAll(filename string) string {
	return fmt.Sprintf("%s/%d_*_*_%s", f.store.CacheDir, f.ownerID, filename)
}

func (f *Folder) fsDir() string {
	return fmt.Sprintf("%s/%d/", f.store.UploadDir, f.ownerID)
}

func (f *Folder) fsPath(filename string) string {
	return filepath.Join(f.fsDir(), filename)
}

func (f *Folder) OwnerID() int {
	return f.ownerID
}

func (f *Folder) Delete(filename string) error {

	filename, err := upload.CleanFilename(filename)
	if err != nil {
		return err
	}

	if err := os.Remove(f.fsPath(filename)); err != nil {
		return err
	}

	cached, err := filepath.Glob(f.cachePatternAll(filename))
	if err != nil {
		return err
	}
	for _, c := range cached {
		if err := os.Remove(c); err != nil {
			return err
		}
	}

	_ = os.Remove(f.fsDir()) // works only if the folder is empty now
	return nil
}

func (f *Folder) Files() ([]os.FileInfo, error) {

	entries, err := os.ReadDir(f.fsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // folder is created lazily on first upload
		}
		return nil, err
	}

	var files = make([]os.FileInfo, 0, len(entries))
	for _, e := range entries {
		info, err := e.Info()
		if err != nil {
			return nil, err
		}
		files = append(files, info)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name() < files[j].Name() })
	return files, nil
}

func (f *Folder) HasFile(filename string) (bool, error) {
	filename, err := upload.CleanFilename(filename)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(f.fsPath(filename)); err == nil {
		return true, nil
	} else if os.IsNotExist(err) {
		return false, nil
	} else {
		return false, err
	}
}

func (f *Folder) Upload(filename string, src io.Reader) error {

	filename, err := upload.CleanFilename(filename)
	if err != nil {
		return err
	}

	// 755 is required if the webserver runs as a different user
	if err := os.MkdirAll(f.fsDir(), 0755); err != nil {
		return err
	}

	has, err := f.HasFile(filename)
	if err != nil {
		return err
	}
	if has {
		return errors.New("file already exists")
	}

	dst, err := os.Create(f.fsPath(filename))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
