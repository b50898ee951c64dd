package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Detection bundles the conventions the structure detector relies on.
// It is built once via DefaultDetection and passed explicitly into the
// detector so tests can substitute alternate conventions.
type Detection struct {
	// IntroFiles are checked in order; the first one present becomes chapter 0
	IntroFiles []string

	// SkipFiles are never treated as book content
	SkipFiles map[string]struct{}

	// ManifestFiles are excluded from flat auto-detection
	ManifestFiles map[string]struct{}

	// ChapterFilePatterns extract a chapter number from conventional
	// filenames; group 1 must capture the number
	ChapterFilePatterns []*regexp.Regexp

	// ContentFileSuffixes rank candidate files inside a chapter directory,
	// best first
	ContentFileSuffixes []string

	// SummaryIntroNames classify SUMMARY.md links as introduction
	SummaryIntroNames map[string]struct{}

	// LeanpubIntroNames classify Book.txt entries as introduction
	LeanpubIntroNames map[string]struct{}
}

// DefaultDetection returns the stock conventions
func DefaultDetection() Detection {
	return Detection{
		IntroFiles: []string{
			"README.md",
			"readme.md",
			"index.md",
			"INDEX.md",
			"introduction.md",
			"INTRODUCTION.md",
			"00-introduction.md",
			"00-intro.md",
		},
		SkipFiles: map[string]struct{}{
			"CONTRIBUTING.md":    {},
			"CHANGELOG.md":       {},
			"LICENSE.md":         {},
			"CODE_OF_CONDUCT.md": {},
		},
		ManifestFiles: map[string]struct{}{
			"SUMMARY.md": {},
			"Book.txt":   {},
		},
		ChapterFilePatterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)^(\d+)[-_](.+)\.md$`),
			regexp.MustCompile(`(?i)^chapter[-_]?(\d+)[-_]?(.*)\.md$`),
			regexp.MustCompile(`(?i)^ch(\d+)[-_]?(.*)\.md$`),
			regexp.MustCompile(`(?i)^part[-_]?(\d+)[-_]?(.*)\.md$`),
		},
		ContentFileSuffixes: []string{
			"complete.md",
			"enhanced.md",
			"revised.md",
			"final.md",
		},
		SummaryIntroNames: map[string]struct{}{
			"readme.md":       {},
			"index.md":        {},
			"introduction.md": {},
		},
		LeanpubIntroNames: map[string]struct{}{
			"introduction.md": {},
			"preface.md":      {},
			"foreword.md":     {},
		},
	}
}

// IsSkipFile reports whether name is in the non-content skip set
func (d Detection) IsSkipFile(name string) bool {
	_, ok := d.SkipFiles[name]
	return ok
}

// IsManifestFile reports whether name is one of the known manifest
// filenames, ignoring case
func (d Detection) IsManifestFile(name string) bool {
	for manifest := range d.ManifestFiles {
		if strings.EqualFold(name, manifest) {
			return true
		}
	}
	return false
}

// IsIntroFile reports whether name is one of the conventional intro filenames
func (d Detection) IsIntroFile(name string) bool {
	for _, intro := range d.IntroFiles {
		if name == intro {
			return true
		}
	}
	return false
}

// ValidateBookRoot checks that root exists, is a directory, and contains at
// least one markdown file at the top level or anywhere below it
func ValidateBookRoot(root string) bool {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return false
	}

	found := false
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".md") {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	return found
}
