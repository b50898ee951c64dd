package detector

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geocine/mdreader/internal/config"
	"github.com/geocine/mdreader/internal/models"
	"github.com/geocine/mdreader/internal/testutil"
)

func TestDetectUnreadableRoot(t *testing.T) {
	d := New(filepath.Join(t.TempDir(), "does-not-exist"), config.DefaultDetection())

	structure, err := d.Detect()
	assert.Error(t, err)
	assert.Nil(t, structure)
}

func TestDetectEmptyDirectoryYieldsEmptyAutoStructure(t *testing.T) {
	root := testutil.TempBook(t, "book")

	s := detect(t, root)

	assert.Equal(t, models.FormatAuto, s.Format)
	assert.Empty(t, s.Chapters)
	assert.Equal(t, root, s.RootPath)
}

func TestDetectFormatPriority(t *testing.T) {
	// SUMMARY.md outranks every other manifest when several coexist
	root := testutil.TempBook(t, "book")
	testutil.WriteFile(t, root, "SUMMARY.md", "- [One](one.md)\n")
	testutil.WriteFile(t, root, "Book.txt", "one.md\n")
	testutil.WriteFile(t, root, "_bookdown.yml", "rmd_files: [one.md]\n")
	testutil.WriteFile(t, root, "book.toml", "[book]\ntitle = \"T\"\n")
	testutil.WriteFile(t, root, "one.md", "# One\n")

	s := detect(t, root)
	assert.Equal(t, models.FormatSummary, s.Format)
}

func TestDetectLeanpubBeforeBookdown(t *testing.T) {
	root := testutil.TempBook(t, "book")
	testutil.WriteFile(t, root, "Book.txt", "one.md\n")
	testutil.WriteFile(t, root, "_bookdown.yml", "rmd_files: [one.md]\n")
	testutil.WriteFile(t, root, "one.md", "# One\n")

	s := detect(t, root)
	assert.Equal(t, models.FormatLeanpub, s.Format)
}

func TestDetectSummaryWithNoResolvableLinksStaysSummary(t *testing.T) {
	// The cascade commits on existence: a SUMMARY.md whose links all
	// dangle still produces a summary-format structure, not a retry of
	// lower-priority formats
	root := testutil.TempBook(t, "book")
	testutil.WriteFile(t, root, "SUMMARY.md", "- [Gone](gone.md)\n")
	testutil.WriteFile(t, root, "01-one.md", "# One\n")

	s := detect(t, root)
	assert.Equal(t, models.FormatSummary, s.Format)
	assert.Empty(t, s.Chapters)
}

func TestDetectMalformedFrontmatterDegradesGracefully(t *testing.T) {
	root := testutil.TempBook(t, "book")
	testutil.WriteFile(t, root, "01-one.md", `---
title: [unclosed
	bad yaml here
---

# Heading Wins

body
`)

	s := detect(t, root)
	require.Len(t, s.Chapters, 1)

	ch := s.Chapters[0]
	assert.Equal(t, "Heading Wins", ch.Title)
	assert.Nil(t, ch.Metadata)
	assert.False(t, ch.IsDraft)
}

func TestDetectWithCustomConfiguration(t *testing.T) {
	cfg := config.DefaultDetection()
	cfg.IntroFiles = []string{"opening.md"}

	root := testutil.TempBook(t, "book")
	testutil.WriteFile(t, root, "opening.md", "# Opening\n")
	testutil.WriteFile(t, root, "README.md", "# Not The Intro\n")

	structure, err := New(root, cfg).Detect()
	require.NoError(t, err)

	intro := structure.Intro()
	require.NotNil(t, intro)
	assert.Equal(t, "Opening", intro.Title)
}
