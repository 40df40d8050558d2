// Package archive reads theme sources stored inside zip archives, such as
// Bootstrap and Bootswatch distribution bundles. Source inside archive is
// addressed by path which continues past archive file name, for example
// "bootstrap-5.3.3-dist.zip/css/bootstrap.css".
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to Walk
// The file argument is the zip.File structure for file in archive which satisfies
// match condition. If an error is returned, processing stops.
type WalkFunc func(archive string, file *zip.File) error

// Walk walks the all files in the archive which satisfy match condition,
// calling walkFn for each item. Archive with absolute entries or entries
// containing ".." is rejected.
func Walk(archive, pattern string, walkFn WalkFunc) error {

	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		name := f.FileHeader.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, pattern) {
			if err := walkFn(archive, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Split separates name into archive file and slash separated path inside
// of it. Archive is the longest existing prefix of name which is a regular
// file with ".zip" extension. When name itself exists or no such prefix is
// found ok is false.
func Split(name string) (arc, inner string, ok bool) {
	var parts []string
	head := filepath.Clean(name)
	for {
		fi, err := os.Stat(head)
		if err == nil {
			if !fi.Mode().IsRegular() || !strings.EqualFold(filepath.Ext(head), ".zip") {
				return "", "", false
			}
			slices.Reverse(parts)
			return head, strings.Join(parts, "/"), true
		}
		dir, file := filepath.Split(head)
		dir = strings.TrimSuffix(dir, string(filepath.Separator))
		if len(file) == 0 || len(dir) == 0 || dir == head {
			return "", "", false
		}
		parts = append(parts, file)
		head = dir
	}
}

// ReadFile returns content of a single file stored in archive.
func ReadFile(arc, inner string) ([]byte, error) {
	if !isSafePath(inner) {
		return nil, fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", inner)
	}

	r, err := zip.OpenReader(arc)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := fs.ReadFile(&r.Reader, inner)
	if err != nil {
		var pe *fs.PathError
		if errors.As(err, &pe) {
			pe.Path = arc + ":" + pe.Path
		}
		return nil, err
	}
	return data, nil
}

// isSafePath returns false for paths that could escape the extraction
// directory: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for _, part := range strings.Split(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
