// Package writer manages authoring-side book state: scaffolding a new book,
// adding numbered chapters with frontmatter, and regenerating SUMMARY.md
// from the chapters directory. Scanning uses the same frontmatter and title
// extraction contract as the structure detector, so chapters created here
// round-trip through detection with the number and title they were written
// with.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/geocine/mdreader/internal/detector"
	"github.com/geocine/mdreader/internal/frontmatter"
	"github.com/geocine/mdreader/internal/utils"
)

// ChaptersDir is the conventional chapter directory name
const ChaptersDir = "chapters"

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
	leadingNum   = regexp.MustCompile(`^\d+`)
)

// Slugify converts a title to a URL-friendly slug
func Slugify(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = slugStrip.ReplaceAllString(text, "")
	text = slugCollapse.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}

// NextChapterNumber finds the next available chapter number from the
// numbered filenames in chaptersDir
func NextChapterNumber(chaptersDir string) int {
	entries, err := os.ReadDir(chaptersDir)
	if err != nil {
		return 1
	}

	maxNum := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".md")
		if m := leadingNum.FindString(name); m != "" {
			if n, err := strconv.Atoi(m); err == nil && n > maxNum {
				maxNum = n
			}
		}
	}
	return maxNum + 1
}

// Entry is one scanned chapter file
type Entry struct {
	Number      int
	Title       string
	File        string // Filename within the chapters directory
	Path        string // Full path on disk
	Draft       bool
	Frontmatter map[string]any
}

// ScanChapters reads every markdown file in chaptersDir and extracts its
// number (leading digits of the filename), title (frontmatter, first
// heading, then filename) and draft flag. Results are sorted by number.
// A missing directory yields an empty list.
func ScanChapters(chaptersDir string) []Entry {
	files, _ := filepath.Glob(filepath.Join(chaptersDir, "*.md"))

	entries := make([]Entry, 0, len(files))
	for _, path := range files {
		name := filepath.Base(path)
		stem := strings.TrimSuffix(name, ".md")

		number := 0
		if m := leadingNum.FindString(stem); m != "" {
			if n, err := strconv.Atoi(m); err == nil {
				number = n
			}
		}

		entry := Entry{
			Number: number,
			Title:  stem,
			File:   name,
			Path:   path,
		}

		content, err := os.ReadFile(path)
		if err != nil {
			entries = append(entries, entry)
			continue
		}

		fields, body := frontmatter.Extract(content)
		entry.Frontmatter = fields

		if title, ok := fields["title"].(string); ok && title != "" {
			entry.Title = title
		} else if heading := detector.FirstHeading(body); heading != "" {
			entry.Title = heading
		}
		if draft, ok := fields["draft"].(bool); ok {
			entry.Draft = draft
		}

		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Number < entries[j].Number
	})
	return entries
}

// GenerateSummary renders SUMMARY.md content: a title line followed by one
// link line per chapter, drafts prefixed with a DRAFT marker
func GenerateSummary(title string, entries []Entry) string {
	if title == "" {
		title = "Summary"
	}

	lines := []string{fmt.Sprintf("# %s", title), ""}
	for _, e := range entries {
		prefix := "- "
		if e.Draft {
			prefix = "- [DRAFT] "
		}
		lines = append(lines, fmt.Sprintf("%s[%s](%s/%s)", prefix, e.Title, ChaptersDir, e.File))
	}

	return strings.Join(lines, "\n") + "\n"
}

// WriteSummary regenerates SUMMARY.md at the book root from entries
func WriteSummary(root, title string, entries []Entry) error {
	content := GenerateSummary(title, entries)
	return utils.WriteFile(filepath.Join(root, "SUMMARY.md"), []byte(content))
}
