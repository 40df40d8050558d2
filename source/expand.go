package source

import (
	"archive/zip"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/maruel/natural"

	"tokconv/archive"
	"tokconv/variables"
)

// Expand turns command line inputs into list of sources. URLs and plain paths
// are kept as is, glob patterns (including "**") are replaced with matching
// files in natural order. Zip archive, or directory inside of it, is replaced
// with all stylesheets it holds. Pattern which matches nothing is an error.
// Order of inputs is preserved. Repeated source is kept at every position it
// appears, so it is merged again and overrides sources listed before it.
func Expand(inputs []string) ([]string, error) {
	var out []string

	for _, in := range inputs {
		if IsURL(in) {
			out = append(out, in)
			continue
		}
		if !hasMeta(in) {
			entries, err := expandArchive(in)
			if err != nil {
				return nil, err
			}
			if entries == nil {
				out = append(out, in)
			}
			out = append(out, entries...)
			continue
		}
		if !doublestar.ValidatePattern(in) {
			return nil, fmt.Errorf("invalid input pattern: %s", in)
		}
		matches, err := doublestar.FilepathGlob(in, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("unable to expand input pattern %s: %w", in, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("input pattern %s: %w: no matching files", in, variables.ErrSourceNotFound)
		}
		sortNatural(matches)
		out = append(out, matches...)
	}
	return out, nil
}

// expandArchive returns stylesheets stored in archive under name. Result is
// nil when name does not point to archive or names single entry in it.
func expandArchive(name string) ([]string, error) {
	arc, inner, ok := archive.Split(name)
	if !ok || isStylesheet(inner) {
		return nil, nil
	}

	prefix := inner
	if len(prefix) > 0 {
		prefix += "/"
	}
	var entries []string
	err := archive.Walk(arc, prefix, func(arc string, f *zip.File) error {
		if isStylesheet(f.Name) {
			entries = append(entries, filepath.Join(arc, filepath.FromSlash(f.Name)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("input %s: %w: %w", name, variables.ErrSourceNotFound, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("input %s: %w: no stylesheets in archive", name, variables.ErrSourceNotFound)
	}
	sortNatural(entries)
	return entries, nil
}

func isStylesheet(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".css", ".scss":
		return true
	}
	return false
}

func sortNatural(names []string) {
	slices.SortFunc(names, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case natural.Less(a, b):
			return -1
		default:
			return 1
		}
	})
}

func hasMeta(path string) bool {
	for i := 0; i < len(path); i++ {
		switch path[i] {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
