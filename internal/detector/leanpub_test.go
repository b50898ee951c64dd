package detector

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geocine/mdreader/internal/models"
	"github.com/geocine/mdreader/internal/testutil"
)

func TestLeanpubBasicStructure(t *testing.T) {
	root := testutil.TempBook(t, "book")
	testutil.WriteFile(t, root, "Book.txt", `introduction.md
one.md
two.md
`)
	testutil.WriteFile(t, root, "introduction.md", "# Welcome\n")
	testutil.WriteFile(t, root, "one.md", "# Chapter One\n")
	testutil.WriteFile(t, root, "two.md", "# Chapter Two\n")

	s := detect(t, root)

	assert.Equal(t, models.FormatLeanpub, s.Format)
	require.Len(t, s.Chapters, 3)

	assert.True(t, s.Chapters[0].IsIntro)
	assert.Equal(t, 0, s.Chapters[0].Number)
	assert.Equal(t, "Welcome", s.Chapters[0].Title)

	assert.Equal(t, 1, s.Chapters[1].Number)
	assert.Equal(t, "Chapter One", s.Chapters[1].Title)
	assert.Equal(t, 2, s.Chapters[2].Number)
}

func TestLeanpubSkipsCommentsAndMatterMarkers(t *testing.T) {
	root := testutil.TempBook(t, "book")
	testutil.WriteFile(t, root, "Book.txt", `# a comment
frontmatter:

one.md
mainmatter:
two.md
backmatter:
`)
	testutil.WriteFile(t, root, "one.md", "")
	testutil.WriteFile(t, root, "two.md", "")

	s := detect(t, root)

	require.Len(t, s.Chapters, 2)
	assert.Equal(t, 1, s.Chapters[0].Number)
	assert.Equal(t, 2, s.Chapters[1].Number)
}

func TestLeanpubPrefersManuscriptDir(t *testing.T) {
	root := testutil.TempBook(t, "book")
	testutil.WriteFile(t, root, "Book.txt", "ch.md\nroot-only.md\n")
	testutil.WriteFile(t, root, filepath.Join("manuscript", "ch.md"), "# From Manuscript\n")
	testutil.WriteFile(t, root, "root-only.md", "# From Root\n")

	s := detect(t, root)

	require.Len(t, s.Chapters, 2)
	assert.Equal(t, filepath.Join(root, "manuscript", "ch.md"), s.Chapters[0].Path)
	// Falls back to the book root when not in manuscript/
	assert.Equal(t, filepath.Join(root, "root-only.md"), s.Chapters[1].Path)
}

func TestLeanpubIgnoresNonMarkdownEntries(t *testing.T) {
	root := testutil.TempBook(t, "book")
	testutil.WriteFile(t, root, "Book.txt", "notes.txt\nch.md\n")
	testutil.WriteFile(t, root, "notes.txt", "not markdown")
	testutil.WriteFile(t, root, "ch.md", "")

	s := detect(t, root)

	require.Len(t, s.Chapters, 1)
	assert.Equal(t, "ch", s.Chapters[0].Title)
}

func TestLeanpubTitleFallsBackToStem(t *testing.T) {
	root := testutil.TempBook(t, "book")
	testutil.WriteFile(t, root, "Book.txt", "some-chapter.md\n")
	testutil.WriteFile(t, root, "some-chapter.md", "no heading here\n")

	s := detect(t, root)

	require.Len(t, s.Chapters, 1)
	assert.Equal(t, "some-chapter", s.Chapters[0].Title)
}
