package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/portfolio/core/content"
	"github.com/dmitrymomot/portfolio/core/i18n"
	"github.com/dmitrymomot/portfolio/web"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate CV documents and translations",
	Long:  "Checks every cv.<lang>.json against the content schema and makes sure each document has a translation dictionary. Without --dir the embedded files are checked.",
	RunE:  runValidate,
}

var validateDir string

func init() {
	validateCmd.Flags().StringVarP(&validateDir, "dir", "d", "", "Directory containing data/ and locales/ (default: embedded files)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	contentFS, localesFS := web.ContentFS(), web.LocalesFS()
	if validateDir != "" {
		if _, err := os.Stat(validateDir); err != nil {
			return fmt.Errorf("content directory: %w", err)
		}
		contentFS = os.DirFS(validateDir)
		localesFS = contentFS
	}

	files, err := fs.Glob(contentFS, web.ContentPattern)
	if err != nil {
		return err
	}

	var errs []error
	for _, name := range files {
		data, err := fs.ReadFile(contentFS, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := content.Validate(name, data); err != nil {
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok      %s\n", name)
	}

	library, err := content.Load(contentFS, web.ContentPattern)
	if err != nil {
		errs = append(errs, err)
	}
	translations, err := i18n.New(
		i18n.WithDefaultLanguage(content.DefaultLang),
		i18n.WithTranslationsFS(localesFS, web.LocalesPattern),
	)
	if err != nil {
		errs = append(errs, err)
	}

	if library != nil && translations != nil {
		for _, lang := range library.Languages() {
			if !translations.Supports(lang) {
				errs = append(errs, fmt.Errorf("cv.%s.json has no locales/%s.json", lang, lang))
			}
		}
		for _, lang := range translations.Languages() {
			if !library.Has(lang) {
				fmt.Fprintf(cmd.OutOrStdout(), "warning locale %q has no CV document, %q is used\n", lang, content.DefaultLang)
			}
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "content is valid")
	return nil
}
