package i18n

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// WithTranslationsFS loads every file matching pattern from fsys as a dictionary.
// The language code is the file name without its ".json" extension, so
// "locales/fr.json" registers the "fr" dictionary.
func WithTranslationsFS(fsys fs.FS, pattern string) Option {
	return func(i *I18n) error {
		files, err := fs.Glob(fsys, pattern)
		if err != nil {
			return fmt.Errorf("invalid translations pattern %q: %w", pattern, err)
		}
		if len(files) == 0 {
			return fmt.Errorf("no translation files match %q", pattern)
		}

		for _, name := range files {
			lang := strings.TrimSuffix(path.Base(name), path.Ext(name))

			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", name, err)
			}

			var dict map[string]any
			if err := json.Unmarshal(data, &dict); err != nil {
				return fmt.Errorf("failed to parse %s: %w", name, err)
			}

			if err := WithTranslations(lang, dict)(i); err != nil {
				return err
			}
		}

		return nil
	}
}
