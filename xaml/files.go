package xaml

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
)

// ErrOutputExists is returned when output file is present and overwriting was
// not requested.
var ErrOutputExists = errors.New("output file already exists")

// WriteFiles writes Tokens.xaml and Theme.xaml into dir creating it when
// necessary. Both files are attempted, all failures are reported.
func WriteFiles(dir string, docs Documents, overwrite bool) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	files := []struct {
		name string
		data string
	}{
		{TokensFileName, docs.Tokens},
		{ThemeFileName, docs.Theme},
	}

	if !overwrite {
		for _, f := range files {
			path := filepath.Join(dir, f.name)
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s: %w", path, ErrOutputExists)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("unable to access output file: %w", err)
			}
		}
	}

	var errs error
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.data), 0644); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("unable to write %s: %w", path, err))
		}
	}
	return errs
}
