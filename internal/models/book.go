package models

import "sort"

// FormatType identifies which detection strategy produced a BookStructure
type FormatType string

const (
	FormatSummary  FormatType = "summary"  // mdBook / GitBook SUMMARY.md
	FormatLeanpub  FormatType = "leanpub"  // Leanpub Book.txt
	FormatBookdown FormatType = "bookdown" // Bookdown _bookdown.yml
	FormatMdBook   FormatType = "mdbook"   // mdBook book.toml
	FormatAuto     FormatType = "auto"     // Filename/directory heuristics
)

// DisplayName returns a human-readable name for the format
func (f FormatType) DisplayName() string {
	switch f {
	case FormatSummary:
		return "mdBook/GitBook (SUMMARY.md)"
	case FormatLeanpub:
		return "Leanpub (Book.txt)"
	case FormatBookdown:
		return "Bookdown (_bookdown.yml)"
	case FormatMdBook:
		return "mdBook (book.toml)"
	case FormatAuto:
		return "Auto-detected"
	default:
		return string(f)
	}
}

// Chapter represents a single addressable chapter in the book.
// Number 0 is reserved for the introduction chapter.
type Chapter struct {
	Number   int            // Sequence assigned by the detecting parser
	Title    string         // Resolved display title, never empty
	Path     string         // Path to the backing file (existence not guaranteed)
	IsIntro  bool           // Introduction/front-matter chapter
	IsDraft  bool           // From frontmatter `draft`, default false
	Author   string         // From frontmatter `author`, optional
	Date     string         // From frontmatter `date`, optional
	Metadata map[string]any // Full frontmatter mapping, may be nil
}

// NewChapter creates a numbered chapter
func NewChapter(number int, title, path string) *Chapter {
	return &Chapter{
		Number: number,
		Title:  title,
		Path:   path,
	}
}

// NewIntroChapter creates the chapter-0 introduction chapter
func NewIntroChapter(title, path string) *Chapter {
	return &Chapter{
		Number:  0,
		Title:   title,
		Path:    path,
		IsIntro: true,
	}
}

// BookStructure is the result of structure detection over a book directory
type BookStructure struct {
	Format   FormatType
	Title    string // Book title when the format provides one
	Author   string // Book author when the format provides one
	Chapters []*Chapter
	RootPath string
}

// NewBookStructure creates an empty structure for the given format and root
func NewBookStructure(format FormatType, rootPath string) *BookStructure {
	return &BookStructure{
		Format:   format,
		Chapters: make([]*Chapter, 0),
		RootPath: rootPath,
	}
}

// PushChapter appends a chapter to the structure
func (s *BookStructure) PushChapter(ch *Chapter) {
	s.Chapters = append(s.Chapters, ch)
}

// Intro returns the introduction chapter, or nil if none was detected
func (s *BookStructure) Intro() *Chapter {
	for _, ch := range s.Chapters {
		if ch.IsIntro {
			return ch
		}
	}
	return nil
}

// NonIntroCount returns the number of chapters excluding the introduction
func (s *BookStructure) NonIntroCount() int {
	count := 0
	for _, ch := range s.Chapters {
		if !ch.IsIntro {
			count++
		}
	}
	return count
}

// ByNumber builds a number -> chapter index. Frontmatter `chapter` overrides
// can produce duplicate numbers; as in the detection pass, a later chapter
// with the same number wins.
func (s *BookStructure) ByNumber() map[int]*Chapter {
	index := make(map[int]*Chapter, len(s.Chapters))
	for _, ch := range s.Chapters {
		index[ch.Number] = ch
	}
	return index
}

// Numbers returns the sorted distinct chapter numbers
func (s *BookStructure) Numbers() []int {
	index := s.ByNumber()
	nums := make([]int, 0, len(index))
	for n := range index {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}
