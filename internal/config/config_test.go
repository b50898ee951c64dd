package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geocine/mdreader/internal/testutil"
)

func TestDefaultDetection(t *testing.T) {
	d := DefaultDetection()

	assert.Equal(t, "README.md", d.IntroFiles[0])
	assert.True(t, d.IsSkipFile("CHANGELOG.md"))
	assert.False(t, d.IsSkipFile("chapter.md"))
	assert.True(t, d.IsManifestFile("summary.MD"))
	assert.True(t, d.IsManifestFile("Book.txt"))
	assert.False(t, d.IsManifestFile("book.toml.md"))
	assert.True(t, d.IsIntroFile("README.md"))
	assert.False(t, d.IsIntroFile("Readme.MD"))

	// complete outranks enhanced, revised and final
	assert.Equal(t, "complete.md", d.ContentFileSuffixes[0])
}

func TestChapterFilePatternsCaptureNumber(t *testing.T) {
	d := DefaultDetection()

	matched := false
	for _, pattern := range d.ChapterFilePatterns {
		if m := pattern.FindStringSubmatch("chapter-12-setup.md"); m != nil {
			assert.Equal(t, "12", m[1])
			matched = true
			break
		}
	}
	assert.True(t, matched)
}

func TestValidateBookRoot(t *testing.T) {
	root := testutil.TempBook(t, "book")
	assert.False(t, ValidateBookRoot(root), "no markdown yet")

	testutil.WriteFile(t, root, filepath.Join("deep", "nested", "ch.md"), "# Ch\n")
	assert.True(t, ValidateBookRoot(root), "nested markdown counts")

	assert.False(t, ValidateBookRoot(filepath.Join(root, "missing")))
	assert.False(t, ValidateBookRoot(filepath.Join(root, "deep", "nested", "ch.md")), "file is not a root")
}

func TestLoadMdBookConfig(t *testing.T) {
	root := testutil.TempBook(t, "book")
	testutil.WriteFile(t, root, "book.toml", `[book]
title = "The Book"
authors = ["First Author", "Second Author"]
src = "src"
`)

	cfg, err := LoadMdBookConfig(filepath.Join(root, "book.toml"))
	require.NoError(t, err)
	assert.Equal(t, "The Book", cfg.Book.Title)
	assert.Equal(t, "First Author", cfg.Book.FirstAuthor())
}

func TestLoadMdBookConfigErrors(t *testing.T) {
	root := testutil.TempBook(t, "book")

	_, err := LoadMdBookConfig(filepath.Join(root, "missing.toml"))
	assert.Error(t, err)

	testutil.WriteFile(t, root, "bad.toml", "not [valid\n")
	_, err = LoadMdBookConfig(filepath.Join(root, "bad.toml"))
	assert.Error(t, err)
}

func TestFirstAuthorEmpty(t *testing.T) {
	assert.Equal(t, "", MdBookBook{}.FirstAuthor())
}

func TestBookMetaRoundTrip(t *testing.T) {
	root := testutil.TempBook(t, "book")
	path := filepath.Join(root, "book.yaml")

	meta := BookMeta{Title: "My Book", Author: "Jane", Language: "en", Created: "2026-08-31"}
	require.NoError(t, SaveBookMeta(path, meta))

	loaded := LoadBookMeta(path)
	assert.Equal(t, meta, loaded)
}

func TestLoadBookMetaMissingOrMalformed(t *testing.T) {
	root := testutil.TempBook(t, "book")

	assert.Equal(t, "Summary", LoadBookMeta(filepath.Join(root, "missing.yaml")).Title)

	testutil.WriteFile(t, root, "bad.yaml", "title: [unclosed\n")
	assert.Equal(t, "Summary", LoadBookMeta(filepath.Join(root, "bad.yaml")).Title)
}
