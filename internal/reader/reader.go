// Package reader holds the navigation state for reading a detected book:
// the chapter index, the current position, and frontmatter-stripped chapter
// content. Terminal presentation lives in the CLI layer.
package reader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/geocine/mdreader/internal/frontmatter"
	"github.com/geocine/mdreader/internal/models"
)

var dirTitleCaser = cases.Title(language.English)

// Reader navigates the chapters of a detected book structure
type Reader struct {
	structure *models.BookStructure
	chapters  map[int]*models.Chapter
	numbers   []int
	current   int
}

// New creates a reader positioned at the first non-intro chapter, or the
// introduction when the book has nothing else
func New(structure *models.BookStructure) *Reader {
	r := &Reader{
		structure: structure,
		chapters:  structure.ByNumber(),
		numbers:   structure.Numbers(),
	}

	for _, n := range r.numbers {
		if !r.chapters[n].IsIntro {
			r.current = n
			break
		}
	}
	return r
}

// Structure returns the underlying book structure
func (r *Reader) Structure() *models.BookStructure {
	return r.structure
}

// BookTitle resolves a display title for the book: the format-provided
// title, then a meaningful intro chapter title, then the directory name
func (r *Reader) BookTitle() string {
	if r.structure.Title != "" {
		return r.structure.Title
	}

	if intro, ok := r.chapters[0]; ok && intro.IsIntro {
		switch strings.ToLower(intro.Title) {
		case "introduction", "readme", "index", "":
		default:
			return intro.Title
		}
	}

	name := filepath.Base(r.structure.RootPath)
	name = strings.ReplaceAll(name, "-", " ")
	name = strings.ReplaceAll(name, "_", " ")
	return dirTitleCaser.String(name)
}

// Numbers returns the sorted chapter numbers
func (r *Reader) Numbers() []int {
	return r.numbers
}

// Chapter returns the chapter with the given number
func (r *Reader) Chapter(n int) (*models.Chapter, bool) {
	ch, ok := r.chapters[n]
	return ch, ok
}

// Current returns the current chapter
func (r *Reader) Current() *models.Chapter {
	return r.chapters[r.current]
}

// CurrentNumber returns the current chapter number
func (r *Reader) CurrentNumber() int {
	return r.current
}

// TotalChapters returns the chapter count excluding the introduction
func (r *Reader) TotalChapters() int {
	return r.structure.NonIntroCount()
}

// Next advances to the next chapter; returns false at the last chapter
func (r *Reader) Next() bool {
	idx := r.currentIndex()
	if idx < 0 || idx >= len(r.numbers)-1 {
		return false
	}
	r.current = r.numbers[idx+1]
	return true
}

// Prev moves to the previous chapter; returns false at the first chapter
func (r *Reader) Prev() bool {
	idx := r.currentIndex()
	if idx <= 0 {
		return false
	}
	r.current = r.numbers[idx-1]
	return true
}

// Jump moves to a specific chapter number; returns false when it does not exist
func (r *Reader) Jump(n int) bool {
	if _, ok := r.chapters[n]; !ok {
		return false
	}
	r.current = n
	return true
}

func (r *Reader) currentIndex() int {
	for i, n := range r.numbers {
		if n == r.current {
			return i
		}
	}
	return 0
}

// ChapterContent reads a chapter's file with frontmatter stripped for display
func (r *Reader) ChapterContent(n int) (string, error) {
	ch, ok := r.chapters[n]
	if !ok {
		return "", fmt.Errorf("chapter %d not found", n)
	}

	content, err := os.ReadFile(ch.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read chapter %d: %w", n, err)
	}

	_, body, _ := frontmatter.Split(content)
	return string(body), nil
}
